package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
)

func stockSortMap() listing.SortMap {
	return listing.NewSortMap(map[string]string{
		"sku":       "p.sku",
		"name":      "p.name",
		"quantity":  "s.quantity",
		"price":     "p.price",
		"updatedat": "p.updated_at",
	}, "updatedat", listing.DirDesc)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SortMap.Resolve — lista blanca de alias
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_AliasConocido(t *testing.T) {
	col, dir := stockSortMap().Resolve("sku", "asc")
	assert.Equal(t, "p.sku", col)
	assert.Equal(t, listing.DirAsc, dir)
}

// La UI envía claves camelCase; el repositorio las define en minúsculas.
func TestResolve_CamelCaseYSnakeCase(t *testing.T) {
	m := stockSortMap()

	col, _ := m.Resolve("updatedAt", "desc")
	assert.Equal(t, "p.updated_at", col, "camelCase debe resolver igual que la clave canónica")

	col, _ = m.Resolve("updated_at", "desc")
	assert.Equal(t, "p.updated_at", col, "snake_case debe resolver igual que la clave canónica")
}

// Alias desconocido cae al orden por defecto en lugar de fallar.
func TestResolve_AliasDesconocido_UsaDefault(t *testing.T) {
	col, dir := stockSortMap().Resolve("dropTable", "asc")
	assert.Equal(t, "p.updated_at", col, "alias desconocido no debe llegar al ORDER BY")
	assert.Equal(t, listing.DirDesc, dir, "alias desconocido también resetea la dirección")
}

func TestResolve_AliasVacio_UsaDefault(t *testing.T) {
	col, dir := stockSortMap().Resolve("", "")
	assert.Equal(t, "p.updated_at", col)
	assert.Equal(t, listing.DirDesc, dir)
}

// La dirección se normaliza; basura cae a la dirección por defecto.
func TestResolve_DireccionNormalizada(t *testing.T) {
	m := stockSortMap()

	_, dir := m.Resolve("price", "ASC")
	assert.Equal(t, listing.DirAsc, dir)

	_, dir = m.Resolve("price", " desc ")
	assert.Equal(t, listing.DirDesc, dir)

	_, dir = m.Resolve("price", "sideways")
	assert.Equal(t, listing.DirDesc, dir, "dirección inválida usa el default del mapa")
}

package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NewPage — ventana de paginación
// ──────────────────────────────────────────────────────────────────────────────

// Sin ítems no hay páginas: ordinales en cero y sin navegación.
func TestNewPage_SinItems_TodoEnCero(t *testing.T) {
	p := listing.NewPage(1, 20, 0)

	assert.Equal(t, 0, p.TotalPages, "sin ítems no debe haber páginas")
	assert.Equal(t, 0, p.StartItem)
	assert.Equal(t, 0, p.EndItem)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

// Caso de referencia: página 2 de 45 ítems con 20 por página → ítems 21..40.
func TestNewPage_Pagina2De45_Ordinales21a40(t *testing.T) {
	p := listing.NewPage(2, 20, 45)

	assert.Equal(t, 21, p.StartItem, "la página 2 empieza en el ítem 21")
	assert.Equal(t, 40, p.EndItem, "la página 2 termina en el ítem 40")
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 20, p.Offset)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

// La última página puede quedar incompleta: EndItem se recorta al total.
func TestNewPage_UltimaPaginaIncompleta(t *testing.T) {
	p := listing.NewPage(3, 20, 45)

	assert.Equal(t, 41, p.StartItem)
	assert.Equal(t, 45, p.EndItem, "la última página solo llega hasta el total")
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

// La página se ajusta al rango [1, TotalPages].
func TestNewPage_PaginaFueraDeRango_SeAjusta(t *testing.T) {
	alta := listing.NewPage(99, 20, 45)
	assert.Equal(t, 3, alta.Page, "página mayor al total debe ajustarse a la última")

	baja := listing.NewPage(0, 20, 45)
	assert.Equal(t, 1, baja.Page, "página cero o negativa debe ajustarse a la primera")

	negativa := listing.NewPage(-5, 20, 45)
	assert.Equal(t, 1, negativa.Page)
}

// pageSize inválido usa el default; excesivo se recorta al máximo.
func TestNewPage_PageSizeInvalido(t *testing.T) {
	def := listing.NewPage(1, 0, 45)
	assert.Equal(t, listing.DefaultPageSize, def.PageSize)

	tope := listing.NewPage(1, 500, 45)
	assert.Equal(t, listing.MaxPageSize, tope.PageSize)
}

// Total exactamente divisible: la última página queda llena y sin siguiente.
func TestNewPage_TotalExacto(t *testing.T) {
	p := listing.NewPage(2, 20, 40)

	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 21, p.StartItem)
	assert.Equal(t, 40, p.EndItem)
	assert.False(t, p.HasNext)
}

// Un solo ítem: una página de 1..1.
func TestNewPage_UnSoloItem(t *testing.T) {
	p := listing.NewPage(1, 20, 1)

	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.StartItem)
	assert.Equal(t, 1, p.EndItem)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NormalizeSearch — plegado de acentos y mayúsculas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSearch_PliegaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "taladro electrico", listing.NormalizeSearch("Taladro Eléctrico"))
	assert.Equal(t, "camion", listing.NormalizeSearch("CAMIÓN"))
}

// La eñe no es una marca diacrítica separable en NFD para efectos prácticos de
// búsqueda: "ñ" se descompone en "n" + tilde, así "baño" matchea "bano".
func TestNormalizeSearch_Enie(t *testing.T) {
	assert.Equal(t, "bano", listing.NormalizeSearch("Baño"))
}

func TestNormalizeSearch_RecortaEspacios(t *testing.T) {
	assert.Equal(t, "sku-001", listing.NormalizeSearch("  SKU-001  "))
}

func TestNormalizeSearch_VacioSinFiltro(t *testing.T) {
	assert.Equal(t, "", listing.NormalizeSearch(""))
	assert.Equal(t, "", listing.NormalizeSearch("   "))
}

package listing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Así "Eléctrico" y "electrico" producen la misma clave de búsqueda.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeSearch prepara el término de búsqueda del usuario para comparar
// contra columnas ya normalizadas: recorta espacios, pliega acentos y pasa a
// minúsculas. Devuelve "" si el término queda vacío (sin filtro).
func NormalizeSearch(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, term)
	if err != nil {
		// Si la transformación falla (input no UTF-8 válido) se busca tal cual
		folded = term
	}
	return strings.ToLower(folded)
}

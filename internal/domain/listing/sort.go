package listing

import "strings"

// Direcciones de ordenamiento.
const (
	DirAsc  = "ASC"
	DirDesc = "DESC"
)

// SortMap es la lista blanca de alias de ordenamiento de un listado:
// clave pública (la que envía la UI) -> expresión de columna SQL.
// El ORDER BY solo se construye con valores de este mapa, nunca con input del usuario.
type SortMap struct {
	aliases    map[string]string
	defaultKey string
	defaultDir string
}

// NewSortMap construye el mapa con su alias y dirección por defecto.
// defaultKey debe existir en aliases.
func NewSortMap(aliases map[string]string, defaultKey, defaultDir string) SortMap {
	return SortMap{aliases: aliases, defaultKey: defaultKey, defaultDir: normalizeDir(defaultDir, DirDesc)}
}

// Resolve mapea el alias y la dirección pedidos a una cláusula segura.
// Alias desconocido o vacío cae al orden por defecto en lugar de fallar
// (la UI puede mandar claves de versiones anteriores).
// Acepta claves camelCase o snake_case indistintamente.
func (m SortMap) Resolve(key, dir string) (column, direction string) {
	col, ok := m.aliases[canonical(key)]
	if !ok {
		col = m.aliases[m.defaultKey]
		return col, m.defaultDir
	}
	return col, normalizeDir(dir, m.defaultDir)
}

// canonical reduce "updatedAt", "updated_at" y "UPDATEDAT" a la misma clave.
func canonical(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ReplaceAll(key, "_", "")
	return strings.ToLower(key)
}

func normalizeDir(dir, def string) string {
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case DirAsc:
		return DirAsc
	case DirDesc:
		return DirDesc
	default:
		return def
	}
}

// Package listing contiene los servicios de dominio puros para los listados
// administrativos: ventana de paginación, mapeo de alias de ordenamiento y
// normalización del término de búsqueda.
package listing

// Valores por defecto y límites de paginación.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page describe la ventana de una página sobre un total de ítems.
// Los ordinales StartItem/EndItem son 1-based; con TotalItems == 0 todo queda en cero.
type Page struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	StartItem  int
	EndItem    int
	HasNext    bool
	HasPrev    bool
	Offset     int // offset SQL equivalente a la página ya ajustada
}

// NewPage calcula la ventana de paginación para la página solicitada.
// pageSize se ajusta a [1, MaxPageSize] (0 o negativo usa el default);
// page se ajusta a [1, TotalPages]. Con totalItems == 0 no hay páginas.
func NewPage(page, pageSize, totalItems int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	p := Page{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	if totalItems == 0 {
		return p
	}

	p.Offset = (page - 1) * pageSize
	p.StartItem = p.Offset + 1
	p.EndItem = p.Offset + pageSize
	if p.EndItem > totalItems {
		p.EndItem = totalItems
	}
	p.HasNext = page < totalPages
	p.HasPrev = page > 1
	return p
}

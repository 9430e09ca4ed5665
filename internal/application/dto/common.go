package dto

import "github.com/jhoicas/ErpAdmin-api/internal/domain/listing"

// PageRequest paginación por número de página para listados.
type PageRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"page_size" validate:"min=0,max=100"`
}

// PageResponse metadatos de página en respuestas.
// StartItem/EndItem son ordinales 1-based del primer y último ítem de la página;
// con total cero todo queda en cero y la UI no pinta controles.
type PageResponse struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	StartItem  int  `json:"start_item"`
	EndItem    int  `json:"end_item"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ToPageResponse convierte la ventana de dominio en el DTO de respuesta.
func ToPageResponse(p listing.Page) PageResponse {
	return PageResponse{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		StartItem:  p.StartItem,
		EndItem:    p.EndItem,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

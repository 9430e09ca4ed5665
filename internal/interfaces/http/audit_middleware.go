package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
	"github.com/jhoicas/ErpAdmin-api/pkg/logger"
)

// AuditMiddleware registra en el log de auditoría cada petición mutadora
// (POST/PUT/PATCH/DELETE) de un usuario autenticado, con el código HTTP final.
// Debe usarse DESPUÉS de AuthMiddleware. Un fallo al auditar no tumba la
// petición original: se registra en el log y la respuesta sigue su curso.
func AuditMiddleware(repo repository.AuditEventRepository, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return err
		}

		companyID := GetCompanyID(c)
		userID := GetUserID(c)
		if companyID == "" || userID == "" {
			return err
		}

		event := &entity.AuditEvent{
			CompanyID:  companyID,
			UserID:     userID,
			Action:     auditAction(c.Method(), c.Route().Path),
			EntityType: auditEntityType(c.Route().Path),
			EntityID:   c.Params("id"),
			StatusCode: c.Response().StatusCode(),
			IP:         c.IP(),
			OccurredAt: time.Now(),
		}
		if auditErr := repo.Create(c.Context(), event); auditErr != nil {
			log.Error().Err(auditErr).
				Str("action", event.Action).
				Str("user_id", userID).
				Msg("no se pudo registrar el evento de auditoría")
		}
		return err
	}
}

// auditEntityType extrae el recurso de la ruta: "/api/products/:id" → "products".
func auditEntityType(routePath string) string {
	path := strings.TrimPrefix(routePath, "/api/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return strings.TrimSuffix(path, "/")
}

// auditAction arma el nombre de la acción a partir del método y la ruta.
// Ej: POST /api/products → "products.create";
// POST /api/sales-orders/:id/dispatch → "sales-orders.dispatch".
func auditAction(method, routePath string) string {
	verb := map[string]string{
		fiber.MethodPost:   "create",
		fiber.MethodPut:    "update",
		fiber.MethodPatch:  "update",
		fiber.MethodDelete: "delete",
	}[method]

	// Sub-acciones: el último segmento literal de la ruta manda sobre el verbo.
	segments := strings.Split(strings.Trim(routePath, "/"), "/")
	if len(segments) > 2 {
		last := segments[len(segments)-1]
		if last != "" && !strings.HasPrefix(last, ":") {
			verb = last
		}
	}
	return auditEntityType(routePath) + "." + verb
}

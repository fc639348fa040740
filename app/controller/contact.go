package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aura-platform/contact-api/app/dto"
	"github.com/aura-platform/contact-api/app/service"
)

const (
	ServiceName    = "AURA Contact API"
	ServiceVersion = "2.0"
)

// AvailableEndpoints lists the routes reported on 404 responses.
var AvailableEndpoints = []string{
	"GET /",
	"GET /api/health",
	"POST /api/contact",
}

// deliveryFailureMessage is what callers see when the transport rejects a
// send. The transport detail only rides along outside production.
const deliveryFailureMessage = "Error al enviar el correo. Por favor, intenta nuevamente."

type ContactController struct {
	contactService  *service.ContactService
	emailConfigured bool
	exposeDetails   bool
}

// NewContactController constructs the HTTP contact controller. exposeDetails
// enables transport error details on failure responses (non-production only).
func NewContactController(contactService *service.ContactService, emailConfigured bool, exposeDetails bool) *ContactController {
	return &ContactController{
		contactService:  contactService,
		emailConfigured: emailConfigured,
		exposeDetails:   exposeDetails,
	}
}

// Contact validates a submission, relays it by email, and acknowledges the
// caller. Validation failures never reach the transport.
func (c *ContactController) Contact(ctx echo.Context) error {
	req, err := dto.FromEchoContext(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Cuerpo de la petición inválido"})
	}
	if verr := req.Validate(); verr != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error()})
	}

	receipt, err := c.contactService.Deliver(ctx.Request().Context(), req.Submission())
	if err != nil {
		var deliveryErr *service.DeliveryError
		if errors.As(err, &deliveryErr) {
			resp := dto.ErrorResponse{Error: deliveryFailureMessage}
			if c.exposeDetails {
				resp.Details = deliveryErr.Error()
			}
			return ctx.JSON(http.StatusInternalServerError, resp)
		}
		return err
	}

	return ctx.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Message: "Consulta enviada exitosamente",
		Data: dto.ContactData{
			Name:      receipt.Name,
			Email:     receipt.Email,
			Company:   receipt.Company,
			Category:  receipt.Category,
			Urgency:   receipt.Urgency,
			MessageID: receipt.MessageID,
		},
	})
}

// Health reports service status and whether transport credentials exist.
func (c *ContactController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:          "healthy",
		Service:         ServiceName,
		Version:         ServiceVersion,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		EmailConfigured: c.emailConfigured,
	})
}

// Root serves the endpoint discovery payload.
func (c *ContactController) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.RootResponse{
		Message:     ServiceName + " v" + ServiceVersion,
		Description: "API para el formulario de contacto de AURA Platform",
		Endpoints: map[string]string{
			"health":  "GET /api/health - Verificar estado del servidor",
			"contact": "POST /api/contact - Enviar consulta por email",
		},
		Documentation: "Consulta el README.md para más información",
	})
}

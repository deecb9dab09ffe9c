package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationsHandler manages the application lifecycle endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Apply handles POST /api/applications.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.JobID == "" {
		return apperrors.NewValidationError("Job ID is required", nil)
	}

	app, err := h.service.Apply(c.Context(), principal.UserID, req.JobID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(applicationResponse(app))
}

// ListOwn handles GET /api/applications.
func (h *ApplicationsHandler) ListOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	applications, err := h.service.ListOwn(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponses(applications))
}

// ListReceived handles GET /api/applications/employer/received.
func (h *ApplicationsHandler) ListReceived(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	applications, err := h.service.ListReceived(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponses(applications))
}

// UpdateStatus handles PATCH /api/applications/:applicationId/status.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	applicationID := c.Params("applicationId")
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if applicationID == "" || req.Status == "" {
		return apperrors.NewValidationError("Application ID and status are required", nil)
	}
	if !domain.ValidApplicationStatus(req.Status) {
		return apperrors.NewValidationError("Invalid status", nil)
	}

	app, err := h.service.UpdateStatus(c.Context(), principal.UserID, applicationID, req.Status)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(applicationResponse(app))
}

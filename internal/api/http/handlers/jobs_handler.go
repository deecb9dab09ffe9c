package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobsHandler manages job posting and browsing endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Description == "" || req.Location == "" {
		return apperrors.NewValidationError("Title, description, and location are required", nil)
	}

	job, err := h.service.Create(c.Context(), principal.UserID, principal.Role, service.JobCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(jobResponse(job))
}

// List handles GET /api/jobs. Public.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

// Get handles GET /api/jobs/:id. Public.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, applications, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	resp := jobResponse(job)
	resp.Applications = make([]dto.ApplicationSummary, 0, len(applications))
	for _, app := range applications {
		resp.Applications = append(resp.Applications, dto.ApplicationSummary{
			ID:        app.ID,
			UserID:    app.UserID,
			JobID:     app.JobID,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
		})
	}
	return c.JSON(resp)
}

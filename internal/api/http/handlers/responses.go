package handlers

import (
	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/domain"
)

func jobResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		EmployerID:  job.EmployerID,
		CreatedAt:   job.CreatedAt,
		Employer:    job.Employer,
	}
}

func applicationResponse(app *domain.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:        app.ID,
		UserID:    app.UserID,
		JobID:     app.JobID,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
		User:      app.User,
	}
	if app.Job != nil {
		job := jobResponse(app.Job)
		resp.Job = &job
	}
	return resp
}

func applicationResponses(apps []domain.Application) []dto.ApplicationResponse {
	items := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, applicationResponse(&apps[i]))
	}
	return items
}

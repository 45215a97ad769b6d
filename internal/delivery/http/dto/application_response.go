package dto

import (
	"career-canvas/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationJob struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Level       string    `json:"level"`
	Salary      int64     `json:"salary"`
	ExternalURL string    `json:"externalUrl,omitempty"`
}

type ApplicationResponse struct {
	ID      uuid.UUID      `json:"_id"`
	UserID  string         `json:"userId"`
	Status  string         `json:"status"`
	Date    int64          `json:"date"`
	Job     ApplicationJob `json:"jobId"`
	Company CompanySummary `json:"companyId"`
}

func NewApplicationResponse(d application.Detail) ApplicationResponse {
	return ApplicationResponse{
		ID:     d.ID,
		UserID: d.UserID,
		Status: d.Status,
		Date:   d.AppliedAt,
		Job: ApplicationJob{
			ID:          d.JobID,
			Title:       d.JobTitle,
			Location:    d.JobLocation,
			Level:       d.JobLevel,
			Salary:      d.JobSalary,
			ExternalURL: d.JobExternalURL,
		},
		Company: CompanySummary{
			ID:    d.CompanyID,
			Name:  d.CompanyName,
			Email: d.CompanyEmail,
			Image: d.CompanyImage,
		},
	}
}

func NewApplicationListResponse(details []application.Detail) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewApplicationResponse(d))
	}
	return out
}

package dto

import (
	"career-canvas/internal/domain/company"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/listing"

	"github.com/google/uuid"
)

type CompanySummary struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Image string    `json:"image,omitempty"`
}

type JobResponse struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Salary      int64     `json:"salary"`
	Date        int64     `json:"date"`
	JobType     string    `json:"jobType"`
	WorkMode    string    `json:"workMode"`
	Skills      []string  `json:"skills"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	Visible     bool      `json:"visible"`

	MatchScore *int `json:"matchScore,omitempty"`
}

type JobListResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	PageCount int           `json:"pageCount"`
}

type JobDetailResponse struct {
	JobResponse
	Company CompanySummary `json:"companyId"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Category:    p.Category,
		Level:       p.Level,
		Salary:      p.Salary,
		Date:        p.PostedAt,
		JobType:     p.JobType,
		WorkMode:    p.WorkMode,
		Skills:      p.Skills,
		ExternalURL: p.ExternalURL,
		Visible:     p.Visible,
	}
}

func NewJobListResponse(items []listing.Item, total, page, pageCount int) JobListResponse {
	jobs := make([]JobResponse, 0, len(items))
	for _, it := range items {
		r := NewJobResponse(it.Posting)
		score := it.Score.Value
		r.MatchScore = &score
		jobs = append(jobs, r)
	}
	return JobListResponse{Jobs: jobs, Total: total, Page: page, PageCount: pageCount}
}

func NewCompanySummary(c company.Company) CompanySummary {
	return CompanySummary{ID: c.ID, Name: c.Name, Email: c.Email, Image: c.Image}
}

package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-canvas/internal/delivery/http/dto"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/listing"
	"career-canvas/internal/pkg/response"
	"career-canvas/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Post("/seed", h.HandleSeedJobs)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	q := usecase.JobQuery{
		Filter: job.ListFilter{
			Title:    c.Query("title"),
			Location: c.Query("location"),
			Category: c.Query("category"),
			Level:    c.Query("level"),
			JobType:  c.Query("jobType"),
			WorkMode: c.Query("workMode"),
		},
		DatePosted: listing.DateBucket(c.Query("datePosted")),
		Criteria: listing.Criteria{
			Categories: parseCSV(c.Query("categories")),
			Locations:  parseCSV(c.Query("locations")),
			Skills:     parseCSV(c.Query("skills")),
			MatchScore: listing.ScoreBucket(c.Query("matchScore")),
			SortBy:     listing.SortKey(c.Query("sort")),
		},
		Page: parseQueryInt(c, "page", 1),
	}

	page, err := h.uc.ListJobs(c.Context(), q)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, response.MessageOK,
		dto.NewJobListResponse(page.Items, page.Total, page.Page, page.PageCount))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError("Job not found", err)
	}

	detail, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}

	res := dto.JobDetailResponse{
		JobResponse: dto.NewJobResponse(detail.Posting),
		Company:     dto.NewCompanySummary(detail.Company),
	}
	return response.Success(c, response.MessageOK, res)
}

func (h *JobsHandler) HandleSeedJobs(c fiber.Ctx) error {
	msg, err := h.uc.SeedJobs(c.Context())
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, msg, nil)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(usecase.ErrJobNotFound.Error(), err)
	case errors.Is(err, usecase.ErrNoCompany):
		return middleware.NewAppError(usecase.ErrNoCompany.Error(), err)
	default:
		return middleware.NewAppError(response.MessageInternalServerError, err)
	}
}

package handler

import (
	"errors"

	"career-canvas/internal/delivery/http/dto"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/pkg/response"
	"career-canvas/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterPublicRoutes mounts the unauthenticated register/login pair.
func (h *CompanyHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
}

func (h *CompanyHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/post-job", h.HandlePostJob)
	r.Get("/list-jobs", h.HandleListJobs)
	r.Get("/applicants", h.HandleListApplicants)
	r.Post("/change-status", h.HandleChangeStatus)
	r.Post("/change-visibility", h.HandleChangeVisibility)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

func (h *CompanyHandler) HandleRegister(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}

	auth, err := h.uc.Register(c.Context(), req.Name, req.Email, req.Password, req.Image)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, "Company Registered", dto.NewCompanyAuthResponse(auth.Company, auth.Token))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CompanyHandler) HandleLogin(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}

	auth, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, response.MessageOK, dto.NewCompanyAuthResponse(auth.Company, auth.Token))
}

type postJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Salary      int64    `json:"salary"`
	JobType     string   `json:"jobType"`
	WorkMode    string   `json:"workMode"`
	Skills      []string `json:"skills"`
	ExternalURL string   `json:"externalUrl"`
}

func (h *CompanyHandler) HandlePostJob(c fiber.Ctx) error {
	companyID, err := companyIDFromLocals(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}

	p, err := h.uc.PostJob(c.Context(), companyID, usecase.PostJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Level:       req.Level,
		Salary:      req.Salary,
		JobType:     req.JobType,
		WorkMode:    req.WorkMode,
		Skills:      req.Skills,
		ExternalURL: req.ExternalURL,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, "Job Posted", dto.NewJobResponse(p))
}

func (h *CompanyHandler) HandleListJobs(c fiber.Ctx) error {
	companyID, err := companyIDFromLocals(c)
	if err != nil {
		return err
	}

	postings, err := h.uc.ListOwnJobs(c.Context(), companyID)
	if err != nil {
		return mapCompanyError(err)
	}

	out := make([]dto.JobResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, dto.NewJobResponse(p))
	}
	return response.Success(c, response.MessageOK, out)
}

func (h *CompanyHandler) HandleListApplicants(c fiber.Ctx) error {
	companyID, err := companyIDFromLocals(c)
	if err != nil {
		return err
	}

	details, err := h.uc.ListApplicants(c.Context(), companyID)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, response.MessageOK, dto.NewApplicationListResponse(details))
}

type changeStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

func (h *CompanyHandler) HandleChangeStatus(c fiber.Ctx) error {
	companyID, err := companyIDFromLocals(c)
	if err != nil {
		return err
	}

	var req changeStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return middleware.NewAppError(usecase.ErrApplicationNotFound.Error(), err)
	}

	if err := h.uc.ChangeApplicationStatus(c.Context(), companyID, appID, req.Status); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, "Status Changed", nil)
}

type changeVisibilityRequest struct {
	JobID   string `json:"jobId"`
	Visible *bool  `json:"visible"`
}

func (h *CompanyHandler) HandleChangeVisibility(c fiber.Ctx) error {
	companyID, err := companyIDFromLocals(c)
	if err != nil {
		return err
	}

	var req changeVisibilityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(usecase.ErrJobNotFound.Error(), err)
	}
	if req.Visible == nil {
		return middleware.NewAppError("Invalid request payload", nil)
	}

	if err := h.uc.ChangeVisibility(c.Context(), companyID, jobID, *req.Visible); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, "Visibility Changed", nil)
}

func companyIDFromLocals(c fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(middleware.CtxCompanyIDKey).(string)
	if !ok || raw == "" {
		return uuid.Nil, middleware.NewAppError(response.MessageUnauthorized, nil)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(response.MessageUnauthorized, err)
	}
	return id, nil
}

func mapCompanyError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError("Invalid request payload", err)
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(err.Error(), err)
	default:
		return middleware.NewAppError(response.MessageInternalServerError, err)
	}
}

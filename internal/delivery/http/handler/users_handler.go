package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"career-canvas/internal/delivery/http/dto"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/pkg/response"
	"career-canvas/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UsersHandler struct {
	profiles     usecase.ProfileUsecase
	applications usecase.ApplicationUsecase
	matcher      usecase.MatchUsecase
	assistant    usecase.AssistantUsecase
}

func NewUsersHandler(profiles usecase.ProfileUsecase, applications usecase.ApplicationUsecase, matcher usecase.MatchUsecase, assistant usecase.AssistantUsecase) *UsersHandler {
	return &UsersHandler{profiles: profiles, applications: applications, matcher: matcher, assistant: assistant}
}

func (h *UsersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user", h.HandleGetUser)
	r.Post("/apply", h.HandleApply)
	r.Post("/update-status", h.HandleUpdateStatus)
	r.Get("/applications", h.HandleListApplications)
	r.Post("/update-profile", h.HandleUpdateProfile)
	r.Post("/match-job", h.HandleMatchJob)
	r.Post("/assistant", h.HandleAssistant)
}

func (h *UsersHandler) HandleGetUser(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	usr, err := h.profiles.GetOrCreate(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, response.MessageOK, dto.NewUserResponse(usr))
}

type applyRequest struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

func (h *UsersHandler) HandleApply(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError("Job not found", err)
	}

	if err := h.applications.Apply(c.Context(), userID, jobID, req.Status); err != nil {
		return mapUserError(err)
	}
	return response.Success(c, "Applied Successfully", nil)
}

type updateStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

func (h *UsersHandler) HandleUpdateStatus(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return middleware.NewAppError(usecase.ErrApplicationNotFound.Error(), err)
	}

	if err := h.applications.UpdateOwnStatus(c.Context(), userID, appID, req.Status); err != nil {
		return mapUserError(err)
	}
	return response.Success(c, "Status Updated", nil)
}

func (h *UsersHandler) HandleListApplications(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	details, err := h.applications.ListForUser(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, response.MessageOK, dto.NewApplicationListResponse(details))
}

func (h *UsersHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}

	in := usecase.UpdateProfileInput{
		Headline:  formField(form, "headline"),
		Portfolio: formField(form, "portfolio"),
		Phone:     formField(form, "phone"),
		Location:  formField(form, "location"),
		SkillsRaw: formField(form, "skills"),
	}

	if files := form.File["resume"]; len(files) > 0 {
		upload, err := readUpload(files[0])
		if err != nil {
			return middleware.NewAppError("Could not read resume file", err)
		}
		in.Resume = upload
	}

	out, err := h.profiles.UpdateProfile(c.Context(), userID, in)
	if err != nil {
		return mapUserError(err)
	}

	res := dto.ProfileUpdateResponse{
		User:                dto.NewUserResponse(out.User),
		ResumeUploaded:      out.ResumeUploaded,
		ResumeTextExtracted: out.ResumeTextExtracted,
		Warning:             out.DegradedReason,
	}
	return response.Success(c, "Profile Updated", res)
}

type matchJobRequest struct {
	JobID string `json:"jobId"`
}

func (h *UsersHandler) HandleMatchJob(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return middleware.NewAppError(response.MessageUnauthorized, nil)
	}

	var req matchJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError("Job not found", err)
	}

	res, err := h.matcher.MatchJob(c.Context(), userID, jobID)
	if err != nil {
		return mapUserError(err)
	}
	if res == nil {
		return response.Success(c, "AI Service Unavailable", nil)
	}
	return response.Success(c, response.MessageOK, dto.NewMatchResponse(*res))
}

type assistantRequest struct {
	Message string `json:"message"`
	Context any    `json:"context"`
}

func (h *UsersHandler) HandleAssistant(c fiber.Ctx) error {
	var req assistantRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError("Invalid request payload", err)
	}

	reply := h.assistant.Chat(c.Context(), req.Message, req.Context)
	return response.Success(c, response.MessageOK, fiber.Map{"reply": reply})
}

func formField(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func readUpload(fh *multipart.FileHeader) (*usecase.ResumeUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &usecase.ResumeUpload{Filename: fh.Filename, Content: content}, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrAlreadyApplied),
		errors.Is(err, usecase.ErrApplicationNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(err.Error(), err)
	default:
		return middleware.NewAppError(response.MessageInternalServerError, err)
	}
}

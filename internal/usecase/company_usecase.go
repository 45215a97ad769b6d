package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-canvas/internal/domain/application"
	"career-canvas/internal/domain/company"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("A company with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

type PostJobInput struct {
	Title       string
	Description string
	Location    string
	Category    string
	Level       string
	Salary      int64
	JobType     string
	WorkMode    string
	Skills      []string
	ExternalURL string
}

type CompanyAuth struct {
	Company company.Company
	Token   string
}

type CompanyUsecase interface {
	Register(ctx context.Context, name, email, password, image string) (CompanyAuth, error)
	Login(ctx context.Context, email, password string) (CompanyAuth, error)
	PostJob(ctx context.Context, companyID uuid.UUID, in PostJobInput) (job.Posting, error)
	ListOwnJobs(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error)
	ListApplicants(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error)
	ChangeApplicationStatus(ctx context.Context, companyID, applicationID uuid.UUID, status string) error
	ChangeVisibility(ctx context.Context, companyID, jobID uuid.UUID, visible bool) error
}

type Companies struct {
	companies company.Repository
	jobs      job.Repository
	apps      application.Repository
	tokens    jwt.Service
	cache     ListingCache
	logger    *log.Logger
	now       func() time.Time
}

func NewCompanyUsecase(companies company.Repository, jobs job.Repository, apps application.Repository, tokens jwt.Service, cache ListingCache, logger *log.Logger) *Companies {
	return &Companies{companies: companies, jobs: jobs, apps: apps, tokens: tokens, cache: cache, logger: logger, now: time.Now}
}

func (u *Companies) Register(ctx context.Context, name, email, password, image string) (CompanyAuth, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(strings.TrimSpace(password)) < 8 {
		return CompanyAuth{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return CompanyAuth{}, ErrInternal
	}

	c := company.Company{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Image:        image,
	}
	if err := u.companies.Create(ctx, c); err != nil {
		if errors.Is(err, company.ErrEmailTaken) {
			return CompanyAuth{}, ErrEmailTaken
		}
		return CompanyAuth{}, ErrInternal
	}

	return u.issue(c)
}

func (u *Companies) Login(ctx context.Context, email, password string) (CompanyAuth, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	c, err := u.companies.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return CompanyAuth{}, ErrInvalidCredentials
		}
		return CompanyAuth{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return CompanyAuth{}, ErrInvalidCredentials
	}

	return u.issue(c)
}

func (u *Companies) issue(c company.Company) (CompanyAuth, error) {
	token, err := u.tokens.GenerateToken(c.ID.String(), jwt.PrincipalCompany, c.Email)
	if err != nil {
		return CompanyAuth{}, ErrInternal
	}
	c.PasswordHash = ""
	return CompanyAuth{Company: c, Token: token}, nil
}

func (u *Companies) PostJob(ctx context.Context, companyID uuid.UUID, in PostJobInput) (job.Posting, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || strings.TrimSpace(in.Description) == "" || in.Salary < 0 {
		return job.Posting{}, ErrInvalidInput
	}
	if in.JobType == "" {
		in.JobType = job.DefaultJobType
	}
	if in.WorkMode == "" {
		in.WorkMode = job.DefaultWorkMode
	}

	p := job.Posting{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		Level:       in.Level,
		Salary:      in.Salary,
		PostedAt:    u.now().UnixMilli(),
		Visible:     true,
		JobType:     in.JobType,
		WorkMode:    in.WorkMode,
		Skills:      in.Skills,
		ExternalURL: in.ExternalURL,
		CompanyID:   companyID,
	}
	if err := u.jobs.Create(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return p, nil
}

func (u *Companies) ListOwnJobs(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	out, err := u.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Companies) ListApplicants(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error) {
	out, err := u.apps.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ChangeApplicationStatus is the recruiter-authoritative status transition.
func (u *Companies) ChangeApplicationStatus(ctx context.Context, companyID, applicationID uuid.UUID, status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrInvalidInput
	}
	ok, err := u.apps.UpdateStatusByCompany(ctx, applicationID, companyID, status)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrApplicationNotFound
	}
	return nil
}

func (u *Companies) ChangeVisibility(ctx context.Context, companyID, jobID uuid.UUID, visible bool) error {
	ok, err := u.jobs.SetVisibility(ctx, jobID, companyID, visible)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrJobNotFound
	}

	u.invalidateListings(ctx)
	return nil
}

func (u *Companies) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobsCachePrefix+"*"); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] cache invalidation failed: %v", err)
	}
}

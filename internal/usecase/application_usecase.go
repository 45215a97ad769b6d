package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-canvas/internal/domain/application"
	"career-canvas/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied      = errors.New("You have already applied for this job")
	ErrApplicationNotFound = errors.New("Application not found or unauthorized")
)

// ApplicationNotifier pushes an event to the owning company's open dashboard
// connections. Implementations must not block the request path.
type ApplicationNotifier interface {
	NotifyApplicationReceived(companyID uuid.UUID, jobTitle, userID string)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID string, jobID uuid.UUID, status string) error
	ListForUser(ctx context.Context, userID string) ([]application.Detail, error)
	UpdateOwnStatus(ctx context.Context, userID string, applicationID uuid.UUID, status string) error
}

type Applications struct {
	apps     application.Repository
	jobs     job.Repository
	notifier ApplicationNotifier
	logger   *log.Logger
	now      func() time.Time
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, notifier ApplicationNotifier, logger *log.Logger) *Applications {
	return &Applications{apps: apps, jobs: jobs, notifier: notifier, logger: logger, now: time.Now}
}

// Apply creates the application. The pre-check gives the common duplicate a
// friendly answer without a write; the storage-level unique constraint is
// what actually guarantees at most one application per (user, job), so a
// concurrent duplicate surfaces as the same conflict.
func (u *Applications) Apply(ctx context.Context, userID string, jobID uuid.UUID, status string) error {
	_, err := u.apps.FindOne(ctx, userID, jobID)
	if err == nil {
		return ErrAlreadyApplied
	}
	if !errors.Is(err, application.ErrNotFound) {
		return ErrInternal
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if status == "" {
		status = application.DefaultStatus
	}

	err = u.apps.Create(ctx, application.Application{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		CompanyID: posting.CompanyID,
		Status:    status,
		AppliedAt: u.now().UnixMilli(),
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return ErrAlreadyApplied
		}
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyApplicationReceived(posting.CompanyID, posting.Title, userID)
	}
	return nil
}

func (u *Applications) ListForUser(ctx context.Context, userID string) ([]application.Detail, error) {
	out, err := u.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// UpdateOwnStatus is the seeker's self-reported tracking update, used for
// externally-applied jobs. Ownership is enforced in the update predicate.
func (u *Applications) UpdateOwnStatus(ctx context.Context, userID string, applicationID uuid.UUID, status string) error {
	if status == "" {
		return ErrApplicationNotFound
	}
	ok, err := u.apps.UpdateStatusByUser(ctx, applicationID, userID, status)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrApplicationNotFound
	}
	return nil
}

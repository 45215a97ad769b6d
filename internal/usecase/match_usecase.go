package usecase

import (
	"context"
	"errors"
	"log"

	"career-canvas/internal/domain/job"
	"career-canvas/internal/domain/user"
	"career-canvas/internal/match"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("User profile missing")
	ErrResumeNotFound = errors.New("Resume not found. Please upload a resume.")
)

type MatchUsecase interface {
	// MatchJob returns nil when the text-generation service is unconfigured;
	// the caller renders a success with an absent match in that case.
	MatchJob(ctx context.Context, userID string, jobID uuid.UUID) (*match.Result, error)
}

type Match struct {
	users     user.Repository
	jobs      job.Repository
	estimator *match.Estimator
	logger    *log.Logger
}

func NewMatchUsecase(users user.Repository, jobs job.Repository, estimator *match.Estimator, logger *log.Logger) *Match {
	return &Match{users: users, jobs: jobs, estimator: estimator, logger: logger}
}

func (u *Match) MatchJob(ctx context.Context, userID string, jobID uuid.UUID) (*match.Result, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}
	if usr.ResumeText == "" {
		return nil, ErrResumeNotFound
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	res, err := u.estimator.Score(ctx, usr.ResumeText, posting.Description)
	if err != nil {
		if errors.Is(err, match.ErrUnconfigured) {
			if u.logger != nil {
				u.logger.Printf("match | estimator unconfigured, returning absent match")
			}
			return nil, nil
		}
		return nil, ErrInternal
	}
	return &res, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-canvas/internal/domain/job"
	"career-canvas/internal/domain/user"
	"career-canvas/internal/match"

	"github.com/google/uuid"
)

func TestMatchJobReturnsParsedScore(t *testing.T) {
	jobID := uuid.New()
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, ResumeText: "Five years of Go and Postgres."}, nil
		},
	}
	jobs := &mockJobRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (job.Posting, error) {
			return job.Posting{ID: jobID, Description: "Backend role"}, nil
		},
	}
	gen := &fakeGenerator{reply: "```json\n{\"matchScore\": 85, \"explanation\": \"Good fit\"}\n```"}

	u := NewMatchUsecase(users, jobs, match.NewEstimator(gen, time.Second, nil), nil)
	res, err := u.MatchJob(context.Background(), "user-1", jobID)
	if err != nil {
		t.Fatalf("MatchJob() error = %v", err)
	}
	if res == nil || res.MatchScore != 85 || res.Explanation != "Good fit" {
		t.Fatalf("result = %+v", res)
	}
}

// A profile without extracted resume text is rejected before any generation
// call is made.
func TestMatchJobRequiresResume(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id}, nil
		},
	}
	gen := &fakeGenerator{reply: "{}"}

	u := NewMatchUsecase(users, &mockJobRepo{}, match.NewEstimator(gen, time.Second, nil), nil)
	_, err := u.MatchJob(context.Background(), "user-1", uuid.New())
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("MatchJob() error = %v, want ErrResumeNotFound", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times, want 0", gen.calls)
	}
}

func TestMatchJobUnknownUser(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{}, user.ErrNotFound
		},
	}

	u := NewMatchUsecase(users, &mockJobRepo{}, match.NewEstimator(&fakeGenerator{}, time.Second, nil), nil)
	_, err := u.MatchJob(context.Background(), "ghost", uuid.New())
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("MatchJob() error = %v, want ErrResumeNotFound", err)
	}
}

func TestMatchJobMissingJob(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, ResumeText: "text"}, nil
		},
	}
	jobs := &mockJobRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (job.Posting, error) {
			return job.Posting{}, job.ErrNotFound
		},
	}

	u := NewMatchUsecase(users, jobs, match.NewEstimator(&fakeGenerator{}, time.Second, nil), nil)
	_, err := u.MatchJob(context.Background(), "user-1", uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("MatchJob() error = %v, want ErrJobNotFound", err)
	}
}

// When no generation backend is configured the result is absent, not an error.
func TestMatchJobUnconfiguredEstimator(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, ResumeText: "text"}, nil
		},
	}
	jobs := &mockJobRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (job.Posting, error) {
			return job.Posting{ID: id, Description: "role"}, nil
		},
	}

	u := NewMatchUsecase(users, jobs, match.NewEstimator(nil, time.Second, nil), nil)
	res, err := u.MatchJob(context.Background(), "user-1", uuid.New())
	if err != nil {
		t.Fatalf("MatchJob() error = %v", err)
	}
	if res != nil {
		t.Fatalf("result = %+v, want nil", res)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"career-canvas/internal/domain/company"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/listing"

	"github.com/google/uuid"
)

func TestListJobsPaginatesVisiblePostings(t *testing.T) {
	now := time.Now()
	var postings []job.Posting
	for i := 0; i < 8; i++ {
		postings = append(postings, job.Posting{
			ID:       uuid.New(),
			Title:    "Role",
			Salary:   int64(1000 * (i + 1)),
			PostedAt: now.Add(-time.Duration(i) * time.Hour).UnixMilli(),
			Visible:  true,
		})
	}
	jobs := &mockJobRepo{
		listVisibleFn: func(ctx context.Context, f job.ListFilter) ([]job.Posting, error) {
			return postings, nil
		},
	}

	u := NewJobUsecase(jobs, &mockCompanyRepo{}, nil, listing.NewScoreSession(1), nil)
	page, err := u.ListJobs(context.Background(), JobQuery{Page: 2})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}

	if page.Total != 8 {
		t.Fatalf("Total = %d, want 8", page.Total)
	}
	if page.PageCount != 2 {
		t.Fatalf("PageCount = %d, want 2", page.PageCount)
	}
	if page.Page != 2 {
		t.Fatalf("Page = %d, want 2", page.Page)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
}

func TestListJobsServedFromCache(t *testing.T) {
	cached := []job.Posting{{ID: uuid.New(), Title: "Cached role", Visible: true}}
	repoCalled := false

	jobs := &mockJobRepo{
		listVisibleFn: func(ctx context.Context, f job.ListFilter) ([]job.Posting, error) {
			repoCalled = true
			return nil, nil
		},
	}
	cache := &mockCache{
		getFn: func(ctx context.Context, key string, out any) (bool, error) {
			if !strings.HasPrefix(key, jobsCachePrefix) {
				t.Fatalf("cache key %q lacks prefix %q", key, jobsCachePrefix)
			}
			b, _ := json.Marshal(cached)
			return true, json.Unmarshal(b, out)
		},
	}

	u := NewJobUsecase(jobs, &mockCompanyRepo{}, cache, listing.NewScoreSession(1), nil)
	page, err := u.ListJobs(context.Background(), JobQuery{Page: 1})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if repoCalled {
		t.Fatal("repository queried despite cache hit")
	}
	if page.Total != 1 || page.Items[0].Posting.Title != "Cached role" {
		t.Fatalf("page = %+v", page)
	}
}

func TestGetJobStripsCompanySecret(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	jobs := &mockJobRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (job.Posting, error) {
			return job.Posting{ID: jobID, CompanyID: companyID}, nil
		},
	}
	companies := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (company.Company, error) {
			return company.Company{ID: companyID, Name: "Acme", PasswordHash: "bcrypt-hash"}, nil
		},
	}

	u := NewJobUsecase(jobs, companies, nil, listing.NewScoreSession(1), nil)
	detail, err := u.GetJob(context.Background(), jobID)
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if detail.Company.PasswordHash != "" {
		t.Fatal("password hash leaked into job detail")
	}
}

func TestGetJobNotFound(t *testing.T) {
	jobs := &mockJobRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (job.Posting, error) {
			return job.Posting{}, job.ErrNotFound
		},
	}

	u := NewJobUsecase(jobs, &mockCompanyRepo{}, nil, listing.NewScoreSession(1), nil)
	_, err := u.GetJob(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("GetJob() error = %v, want ErrJobNotFound", err)
	}
}

func TestSeedJobsAttachesToFirstCompany(t *testing.T) {
	owner := company.Company{ID: uuid.New(), Name: "Acme"}
	var inserted []job.Posting
	invalidated := false

	jobs := &mockJobRepo{
		insertManyFn: func(ctx context.Context, ps []job.Posting) error {
			inserted = ps
			return nil
		},
	}
	companies := &mockCompanyRepo{
		firstFn: func(ctx context.Context) (company.Company, error) { return owner, nil },
	}
	cache := &mockCache{
		deleteFn: func(ctx context.Context, pattern string) error {
			invalidated = true
			return nil
		},
	}

	u := NewJobUsecase(jobs, companies, cache, listing.NewScoreSession(1), nil)
	msg, err := u.SeedJobs(context.Background())
	if err != nil {
		t.Fatalf("SeedJobs() error = %v", err)
	}

	if len(inserted) != 3 {
		t.Fatalf("inserted %d postings, want 3", len(inserted))
	}
	for _, p := range inserted {
		if p.CompanyID != owner.ID {
			t.Fatalf("posting owned by %v, want %v", p.CompanyID, owner.ID)
		}
		if !p.Visible {
			t.Fatal("seeded posting not visible")
		}
	}
	if msg != "Seeded 3 external jobs." {
		t.Fatalf("message = %q", msg)
	}
	if !invalidated {
		t.Fatal("listing cache not invalidated after seeding")
	}
}

func TestSeedJobsWithoutCompanies(t *testing.T) {
	companies := &mockCompanyRepo{
		firstFn: func(ctx context.Context) (company.Company, error) {
			return company.Company{}, company.ErrNotFound
		},
	}

	u := NewJobUsecase(&mockJobRepo{}, companies, nil, listing.NewScoreSession(1), nil)
	_, err := u.SeedJobs(context.Background())
	if !errors.Is(err, ErrNoCompany) {
		t.Fatalf("SeedJobs() error = %v, want ErrNoCompany", err)
	}
}

func TestPostedAfterMillisBuckets(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 45, 0, 0, time.UTC)

	if got := postedAfterMillis("", now); got != 0 {
		t.Fatalf("unbounded bucket = %d, want 0", got)
	}

	got := postedAfterMillis(listing.DateLast24h, now)
	want := now.Add(-24 * time.Hour).Truncate(time.Hour).UnixMilli()
	if got != want {
		t.Fatalf("24h bucket = %d, want %d", got, want)
	}
	if got%int64(time.Hour/time.Millisecond) != 0 {
		t.Fatal("threshold not truncated to the hour")
	}
}

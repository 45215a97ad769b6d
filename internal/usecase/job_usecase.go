package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"career-canvas/internal/domain/company"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/listing"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("Job not found")
	ErrNoCompany   = errors.New("No company found to attach mock jobs")
	ErrInternal    = errors.New("internal error")
)

// JobQuery carries both filter surfaces: the simple server-side query params
// and the faceted criteria the listing engine evaluates in memory.
type JobQuery struct {
	Filter     job.ListFilter
	DatePosted listing.DateBucket
	Criteria   listing.Criteria
	Page       int
}

type JobPage struct {
	Items     []listing.Item
	Total     int
	Page      int
	PageCount int
}

type JobDetail struct {
	Posting job.Posting
	Company company.Company
}

type JobUsecase interface {
	ListJobs(ctx context.Context, q JobQuery) (JobPage, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error)
	SeedJobs(ctx context.Context) (string, error)
}

type Jobs struct {
	jobs      job.Repository
	companies company.Repository
	cache     ListingCache
	scores    *listing.ScoreSession
	logger    *log.Logger
	now       func() time.Time
}

func NewJobUsecase(jobs job.Repository, companies company.Repository, cache ListingCache, scores *listing.ScoreSession, logger *log.Logger) *Jobs {
	if scores == nil {
		scores = listing.NewScoreSession(uint64(time.Now().UnixNano()))
	}
	return &Jobs{jobs: jobs, companies: companies, cache: cache, scores: scores, logger: logger, now: time.Now}
}

func (u *Jobs) ListJobs(ctx context.Context, q JobQuery) (JobPage, error) {
	now := u.now()

	f := q.Filter
	f.PostedAfter = postedAfterMillis(q.DatePosted, now)

	rows, err := u.loadVisible(ctx, f)
	if err != nil {
		return JobPage{}, ErrInternal
	}

	c := q.Criteria
	c.DatePosted = q.DatePosted

	items := listing.Apply(rows, c, now, nil, u.scores)
	pageItems, page := listing.Paginate(items, q.Page)

	return JobPage{
		Items:     pageItems,
		Total:     len(items),
		Page:      page,
		PageCount: listing.PageCount(len(items)),
	}, nil
}

// loadVisible is cache-aside over the repository; a cache failure falls
// through to the database.
func (u *Jobs) loadVisible(ctx context.Context, f job.ListFilter) ([]job.Posting, error) {
	key := ""
	if u.cache != nil {
		key = JobsCacheKey(f)
		var cached []job.Posting
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", key)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache MISS: %s", key)
		}
	}

	rows, err := u.jobs.ListVisible(ctx, f)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, rows, 0)
	}
	return rows, nil
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	p, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return JobDetail{}, ErrJobNotFound
		}
		return JobDetail{}, ErrInternal
	}

	c, err := u.companies.GetByID(ctx, p.CompanyID)
	if err != nil && !errors.Is(err, company.ErrNotFound) {
		return JobDetail{}, ErrInternal
	}
	c.PasswordHash = ""

	return JobDetail{Posting: p, Company: c}, nil
}

// SeedJobs inserts the mock external postings, attached to any existing
// company. The cron scheduler and POST /jobs/seed both land here.
func (u *Jobs) SeedJobs(ctx context.Context) (string, error) {
	owner, err := u.companies.First(ctx)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return "", ErrNoCompany
		}
		return "", ErrInternal
	}

	mocks := mockExternalPostings(owner.ID, u.now())
	if err := u.jobs.InsertMany(ctx, mocks); err != nil {
		return "", ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, jobsCachePrefix+"*")
	}

	return fmt.Sprintf("Seeded %d external jobs.", len(mocks)), nil
}

func postedAfterMillis(bucket listing.DateBucket, now time.Time) int64 {
	var d time.Duration
	switch bucket {
	case listing.DateLast24h:
		d = 24 * time.Hour
	case listing.DateLast7d:
		d = 7 * 24 * time.Hour
	case listing.DateLast30d:
		d = 30 * 24 * time.Hour
	default:
		return 0
	}
	// truncated to the hour so equivalent queries share a cache entry
	return now.Add(-d).Truncate(time.Hour).UnixMilli()
}

func mockExternalPostings(companyID uuid.UUID, now time.Time) []job.Posting {
	ts := now.UnixMilli()
	return []job.Posting{
		{
			ID:          uuid.New(),
			Title:       "Frontend Engineer (External) - Auto",
			Description: "<p>We are looking for a React expert to join our global team.</p>",
			Location:    "New York (Remote)",
			Category:    "Programming",
			Level:       "Senior level",
			Salary:      125000 + rand.Int63n(10000),
			PostedAt:    ts,
			Visible:     true,
			JobType:     "Full-time",
			WorkMode:    "Remote",
			Skills:      []string{"React", "TypeScript", "Redux"},
			ExternalURL: "https://google.com/",
			CompanyID:   companyID,
		},
		{
			ID:          uuid.New(),
			Title:       "Data Scientist (Adzuna) - Auto",
			Description: "<p>Analyze large datasets and build predictive models.</p>",
			Location:    "London, UK",
			Category:    "Data Science",
			Level:       "Intermediate level",
			Salary:      98000 + rand.Int63n(5000),
			PostedAt:    ts,
			Visible:     true,
			JobType:     "Contract",
			WorkMode:    "Hybrid",
			Skills:      []string{"Python", "Pandas", "Machine Learning"},
			ExternalURL: "https://adzuna.com/",
			CompanyID:   companyID,
		},
		{
			ID:          uuid.New(),
			Title:       "Product Designer - Auto",
			Description: "<p>Design intuitive user experiences for our mobile apps.</p>",
			Location:    "California",
			Category:    "Design",
			Level:       "Beginner level",
			Salary:      72000 + rand.Int63n(5000),
			PostedAt:    ts,
			Visible:     true,
			JobType:     "Full-time",
			WorkMode:    "On-site",
			Skills:      []string{"Figma", "UI/UX", "Prototyping"},
			ExternalURL: "https://dribbble.com/jobs",
			CompanyID:   companyID,
		},
	}
}

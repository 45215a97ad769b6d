package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-canvas/internal/database"
	"career-canvas/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, title, description, location, category, level, salary, posted_at,
	visible, job_type, work_mode, COALESCE(skills, '{}'), COALESCE(external_url, ''), company_id`

func (r *JobRepository) Create(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs
		 (id, title, description, location, category, level, salary, posted_at,
		  visible, job_type, work_mode, skills, external_url, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Title, p.Description, p.Location, p.Category, p.Level, p.Salary, p.PostedAt,
		p.Visible, p.JobType, p.WorkMode, p.Skills, p.ExternalURL, p.CompanyID,
	)
	return err
}

func (r *JobRepository) InsertMany(ctx context.Context, ps []job.Posting) error {
	for _, p := range ps {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanPosting(row)
}

// ListVisible applies the GET /jobs query filter server-side: title is
// OR-matched across title, description, category and skills; location is a
// case-insensitive substring; the rest are exact. Newest first.
func (r *JobRepository) ListVisible(ctx context.Context, f job.ListFilter) ([]job.Posting, error) {
	where := []string{"visible = TRUE"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if t := strings.TrimSpace(f.Title); t != "" {
		n := arg("%" + t + "%")
		where = append(where, fmt.Sprintf(
			`(title ILIKE %[1]s OR description ILIKE %[1]s OR category ILIKE %[1]s
			  OR EXISTS (SELECT 1 FROM unnest(skills) AS sk WHERE sk ILIKE %[1]s))`, n))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		where = append(where, "location ILIKE "+arg("%"+l+"%"))
	}
	if f.Category != "" {
		where = append(where, "category = "+arg(f.Category))
	}
	if f.Level != "" {
		where = append(where, "level = "+arg(f.Level))
	}
	if f.JobType != "" {
		where = append(where, "job_type = "+arg(f.JobType))
	}
	if f.WorkMode != "" {
		where = append(where, "work_mode = "+arg(f.WorkMode))
	}
	if f.PostedAfter > 0 {
		where = append(where, "posted_at >= "+arg(f.PostedAfter))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY posted_at DESC`

	return r.queryPostings(ctx, query, args...)
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	return r.queryPostings(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY posted_at DESC`,
		companyID)
}

func (r *JobRepository) SetVisibility(ctx context.Context, id, companyID uuid.UUID, visible bool) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET visible = $1 WHERE id = $2 AND company_id = $3`,
		visible, id, companyID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *JobRepository) queryPostings(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosting(row scanner) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.Category, &p.Level,
		&p.Salary, &p.PostedAt, &p.Visible, &p.JobType, &p.WorkMode,
		&p.Skills, &p.ExternalURL, &p.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

package postgres

import (
	"context"
	"errors"

	"career-canvas/internal/database"
	"career-canvas/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create relies on the applications_user_job_key UNIQUE (user_id, job_id)
// constraint as the authoritative duplicate guard; the usecase pre-check only
// exists for a friendlier message on the common path.
func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, company_id, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.UserID, a.JobID, a.CompanyID, a.Status, a.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) FindOne(ctx context.Context, userID string, jobID uuid.UUID) (application.Application, error) {
	var a application.Application
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, company_id, status, applied_at
		 FROM applications WHERE user_id = $1 AND job_id = $2`,
		userID, jobID)
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.CompanyID, &a.Status, &a.AppliedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

const detailColumns = `a.id, a.user_id, a.job_id, a.company_id, a.status, a.applied_at,
	j.title, j.location, j.level, j.salary, COALESCE(j.external_url, ''),
	c.name, c.email, COALESCE(c.image, '')`

const detailJoins = `FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = a.company_id`

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]application.Detail, error) {
	return r.queryDetails(ctx,
		`SELECT `+detailColumns+` `+detailJoins+` WHERE a.user_id = $1 ORDER BY a.applied_at DESC`,
		userID)
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error) {
	return r.queryDetails(ctx,
		`SELECT `+detailColumns+` `+detailJoins+` WHERE a.company_id = $1 ORDER BY a.applied_at DESC`,
		companyID)
}

func (r *ApplicationRepository) UpdateStatusByUser(ctx context.Context, id uuid.UUID, userID, status string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND user_id = $3`,
		status, id, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ApplicationRepository) UpdateStatusByCompany(ctx context.Context, id, companyID uuid.UUID, status string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND company_id = $3`,
		status, id, companyID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ApplicationRepository) queryDetails(ctx context.Context, query string, args ...any) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Detail, 0)
	for rows.Next() {
		var d application.Detail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.JobID, &d.CompanyID, &d.Status, &d.AppliedAt,
			&d.JobTitle, &d.JobLocation, &d.JobLevel, &d.JobSalary, &d.JobExternalURL,
			&d.CompanyName, &d.CompanyEmail, &d.CompanyImage,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

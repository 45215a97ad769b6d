package postgres

import (
	"context"
	"errors"

	"career-canvas/internal/database"
	"career-canvas/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CompanyRepository struct {
	db database.DB
}

func NewCompanyRepository(db database.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, email, password_hash, image)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Email, c.PasswordHash, c.Image,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return company.ErrEmailTaken
		}
		return err
	}
	return nil
}

const companyColumns = `id, name, email, password_hash, COALESCE(image, ''), created_at`

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
	return scanCompany(row)
}

func (r *CompanyRepository) First(ctx context.Context) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at LIMIT 1`)
	return scanCompany(row)
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Image, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

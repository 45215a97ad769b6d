package postgres

import (
	"context"
	"errors"

	"career-canvas/internal/database"
	"career-canvas/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users
		 (id, name, email, image, headline, portfolio, phone, location, skills, resume, resume_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Name, u.Email, u.Image, u.Headline, u.Portfolio, u.Phone, u.Location,
		u.Skills, u.Resume, u.ResumeText,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(image, ''), COALESCE(headline, ''),
		        COALESCE(portfolio, ''), COALESCE(phone, ''), COALESCE(location, ''),
		        COALESCE(skills, '{}'), COALESCE(resume, ''), COALESCE(resume_text, ''),
		        created_at, updated_at
		 FROM users WHERE id = $1`, id)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Image, &u.Headline, &u.Portfolio, &u.Phone,
		&u.Location, &u.Skills, &u.Resume, &u.ResumeText, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET
		   name = $2, email = $3, image = $4, headline = $5, portfolio = $6,
		   phone = $7, location = $8, skills = $9, resume = $10, resume_text = $11,
		   updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Image, u.Headline, u.Portfolio, u.Phone, u.Location,
		u.Skills, u.Resume, u.ResumeText,
	)
	return err
}

package usecase

import (
	"context"
	"time"

	"career-canvas/internal/domain/application"
	"career-canvas/internal/domain/company"
	"career-canvas/internal/domain/job"
	"career-canvas/internal/domain/user"
	"career-canvas/internal/pkg/jwt"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	createFn        func(ctx context.Context, p job.Posting) error
	insertManyFn    func(ctx context.Context, ps []job.Posting) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (job.Posting, error)
	listVisibleFn   func(ctx context.Context, f job.ListFilter) ([]job.Posting, error)
	listByCompanyFn func(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error)
	setVisibilityFn func(ctx context.Context, id, companyID uuid.UUID, visible bool) (bool, error)
}

func (m *mockJobRepo) Create(ctx context.Context, p job.Posting) error { return m.createFn(ctx, p) }
func (m *mockJobRepo) InsertMany(ctx context.Context, ps []job.Posting) error {
	return m.insertManyFn(ctx, ps)
}
func (m *mockJobRepo) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockJobRepo) ListVisible(ctx context.Context, f job.ListFilter) ([]job.Posting, error) {
	return m.listVisibleFn(ctx, f)
}
func (m *mockJobRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Posting, error) {
	return m.listByCompanyFn(ctx, companyID)
}
func (m *mockJobRepo) SetVisibility(ctx context.Context, id, companyID uuid.UUID, visible bool) (bool, error) {
	return m.setVisibilityFn(ctx, id, companyID, visible)
}

type mockAppRepo struct {
	createFn        func(ctx context.Context, a application.Application) error
	findOneFn       func(ctx context.Context, userID string, jobID uuid.UUID) (application.Application, error)
	listByUserFn    func(ctx context.Context, userID string) ([]application.Detail, error)
	listByCompanyFn func(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error)
	updateByUserFn  func(ctx context.Context, id uuid.UUID, userID, status string) (bool, error)
	updateByCompFn  func(ctx context.Context, id, companyID uuid.UUID, status string) (bool, error)
}

func (m *mockAppRepo) Create(ctx context.Context, a application.Application) error {
	return m.createFn(ctx, a)
}
func (m *mockAppRepo) FindOne(ctx context.Context, userID string, jobID uuid.UUID) (application.Application, error) {
	return m.findOneFn(ctx, userID, jobID)
}
func (m *mockAppRepo) ListByUser(ctx context.Context, userID string) ([]application.Detail, error) {
	return m.listByUserFn(ctx, userID)
}
func (m *mockAppRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error) {
	return m.listByCompanyFn(ctx, companyID)
}
func (m *mockAppRepo) UpdateStatusByUser(ctx context.Context, id uuid.UUID, userID, status string) (bool, error) {
	return m.updateByUserFn(ctx, id, userID, status)
}
func (m *mockAppRepo) UpdateStatusByCompany(ctx context.Context, id, companyID uuid.UUID, status string) (bool, error) {
	return m.updateByCompFn(ctx, id, companyID, status)
}

type mockUserRepo struct {
	createFn  func(ctx context.Context, u user.User) error
	getByIDFn func(ctx context.Context, id string) (user.User, error)
	updateFn  func(ctx context.Context, u user.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u user.User) error { return m.createFn(ctx, u) }
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserRepo) Update(ctx context.Context, u user.User) error { return m.updateFn(ctx, u) }

type mockCompanyRepo struct {
	createFn     func(ctx context.Context, c company.Company) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (company.Company, error)
	getByEmailFn func(ctx context.Context, email string) (company.Company, error)
	firstFn      func(ctx context.Context) (company.Company, error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, c company.Company) error {
	return m.createFn(ctx, c)
}
func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCompanyRepo) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockCompanyRepo) First(ctx context.Context) (company.Company, error) {
	return m.firstFn(ctx)
}

type mockCache struct {
	getFn    func(ctx context.Context, key string, out any) (bool, error)
	setFn    func(ctx context.Context, key string, value any, ttl time.Duration) error
	deleteFn func(ctx context.Context, pattern string) error
}

func (m *mockCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if m.getFn == nil {
		return false, nil
	}
	return m.getFn(ctx, key, out)
}
func (m *mockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, key, value, ttl)
}
func (m *mockCache) DeleteByPattern(ctx context.Context, pattern string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, pattern)
}

type mockNotifier struct {
	calls []string
}

func (m *mockNotifier) NotifyApplicationReceived(companyID uuid.UUID, jobTitle, userID string) {
	m.calls = append(m.calls, jobTitle)
}

type mockStore struct {
	uploadFn func(ctx context.Context, filename string, content []byte) (string, error)
}

func (m *mockStore) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	return m.uploadFn(ctx, filename, content)
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.reply, g.err
}

type mockTokenService struct {
	generateFn func(principalID, principalType, email string) (string, error)
}

func (m *mockTokenService) GenerateToken(principalID, principalType, email string) (string, error) {
	if m.generateFn == nil {
		return "token", nil
	}
	return m.generateFn(principalID, principalType, email)
}

func (m *mockTokenService) ValidateToken(tokenString string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

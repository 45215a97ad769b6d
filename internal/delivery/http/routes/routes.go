package routes

import (
	"career-canvas/internal/delivery/http/handler"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	jobs    *handler.JobsHandler
	users   *handler.UsersHandler
	company *handler.CompanyHandler
	wsh     *ws.Handler
	auth    *middleware.AuthMiddleware
}

func NewRegistry(jobs *handler.JobsHandler, users *handler.UsersHandler, company *handler.CompanyHandler, wsh *ws.Handler, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(),
		jobs:    jobs,
		users:   users,
		company: company,
		wsh:     wsh,
		auth:    auth,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")

	r.jobs.RegisterRoutes(api.Group("/jobs"))
	r.users.RegisterRoutes(api.Group("/users", r.auth.RequireUser()))

	company := api.Group("/company")
	r.company.RegisterPublicRoutes(company)
	r.company.RegisterProtectedRoutes(company.Group("", r.auth.RequireCompany()))

	if r.wsh != nil {
		app.Get("/ws/company", r.wsh.HandleCompanyWS)
	}
}

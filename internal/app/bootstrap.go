package app

import (
	"fmt"
	"log"
	"strings"

	"career-canvas/internal/config"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, mounts middleware and routes, and starts
// the background workers (websocket hub, seeding scheduler). The returned
// cleanup releases every held connection.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(c.JobsH, c.UsersH, c.CompanyH, c.WSHandler, c.Auth)
	registry.Register(f)

	go c.Hub.Run()

	if cfg.Seeder.Enabled {
		if err := c.Scheduler.Start(cfg.Seeder.IntervalHours); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package app

import (
	"fmt"
	"strings"

	"mentormatch/internal/delivery/http/handler"
	"mentormatch/internal/delivery/http/middleware"
	"mentormatch/internal/delivery/http/routes"
	v1 "mentormatch/internal/delivery/http/routes/v1"
	"mentormatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap builds the container and the HTTP app on top of it. The returned
// cleanup closes the container's connections and must run on shutdown.
func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)

	go c.Hub.Run()

	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.App.CORSOriginList(),
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
	}))

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	deps := v1.Dependencies{
		DB:      c.DB,
		Redis:   c.Redis,
		Advisor: c.Advisor,
		Logger:  c.Logger,
	}
	registry := routes.NewRegistry(handler.NewHealthHandler(c.DB, c.Redis), deps)
	registry.Register(app)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	app.Get("/ws/matches", wsHandler.HandleMatchesWS)
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

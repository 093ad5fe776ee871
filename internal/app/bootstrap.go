package app

import (
	"fmt"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

// New builds the Fiber app with global middleware and the given routes.
func New(cfg config.Config, l *zap.Logger, registry *routes.Registry) *App {
	l = logger.OrNop(l)
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, l)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f, Logger: l}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	l, err := logger.New(cfg.App.AppName, cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	c, err := NewContainer(cfg, l)
	if err != nil {
		_ = l.Sync()
		return nil, nil, err
	}

	app := New(cfg, l, newRegistry(c))
	cleanup := func() error {
		err := c.Close()
		_ = l.Sync()
		return err
	}
	return app, cleanup, nil
}

func newRegistry(c *Container) *routes.Registry {
	directory := repository.NewPostgresUserDirectory(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)
	userSkills := repository.NewPostgresUserSkillRepository(c.DB)
	users := repository.NewPostgresUserQueryRepository(c.DB)

	var matchCache usecase.MatchCache
	if c.Cache != nil {
		matchCache = c.Cache
	}
	matchingUC := usecase.NewMatchingUsecase(directory, matchCache, c.Config.Matching.CacheTTL, c.Logger)
	skillUC := usecase.NewSkillUsecase(skills)
	userSkillUC := usecase.NewUserSkillUsecase(userSkills, users, matchingUC)

	checks := []handler.HealthCheck{{Name: "postgres", Pinger: c.DB}}
	if c.Cache != nil {
		checks = append(checks, handler.HealthCheck{Name: "redis", Pinger: c.Cache, Optional: true})
	}
	health := handler.NewHealthHandler(checks...)

	return routes.NewRegistry(health, v1.Handlers{
		Match:     handler.NewMatchHandler(matchingUC, c.Config.Matching),
		Skill:     handler.NewSkillHandler(skillUC),
		UserSkill: handler.NewUserSkillHandler(userSkillUC),
	})
}

func registerGlobalMiddleware(app *fiber.App, l *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(l).Middleware())
	app.Use(middleware.NewErrorMiddleware(l).Middleware())
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

package app

import (
	"fmt"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	"skill-swap/internal/infrastructure/persistence/postgres"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"
	ucauth "skill-swap/internal/usecase/auth"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap builds the full application: resources, repositories,
// usecases, handlers and routes. The returned cleanup stops the hub and
// releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := postgres.NewUserRepository(container.DB)
	userQueryRepo := repository.NewPostgresUserQueryRepository(container.DB)
	skillRepo := repository.NewPostgresSkillRepository(container.DB)
	userSkillRepo := repository.NewPostgresUserSkillRepository(container.DB)
	swapRepo := repository.NewPostgresSwapRequestRepository(container.DB)
	ratingRepo := repository.NewPostgresRatingRepository(container.DB)

	hub := ws.NewHub(container.Logger)
	go hub.Run()
	notifier := ws.NewSwapNotifier(hub)

	authUC := ucauth.NewService(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, userQueryRepo, userSkillRepo, ratingRepo, container.Cache, cfg.Redis.TTL)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo, container.Cache)
	swapUC := usecase.NewSwapRequestUsecase(swapRepo, skillRepo, userRepo, notifier)
	ratingUC := usecase.NewRatingUsecase(ratingRepo, userRepo, container.Cache)

	wsHandler := ws.NewHandler(hub, container.Logger)

	registry := &routes.Registry{
		Health:      handler.NewHealthHandler(container.DB),
		Auth:        handler.NewAuthHandler(authUC),
		User:        handler.NewUserHandler(userUC),
		Skill:       handler.NewSkillHandler(skillUC),
		UserSkill:   handler.NewUserSkillHandler(userSkillUC),
		SwapRequest: handler.NewSwapRequestHandler(swapUC),
		Rating:      handler.NewRatingHandler(ratingUC),
		AuthMw:      middleware.NewAuthMiddleware(jwtSvc),
		WS:          wsHandler.Handle,
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})
	f.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())
	registry.Register(f)

	cleanup := func() error {
		hub.Stop()
		return container.Close()
	}

	return &App{Fiber: f, Hub: hub}, cleanup, nil
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

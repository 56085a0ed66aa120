package app

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"gtshop/config"
	"gtshop/internal/controller"
	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/internal/infrastructure/notification"
	"gtshop/internal/infrastructure/tracing"
	"gtshop/internal/middleware"
	"gtshop/internal/repository"
	"gtshop/internal/service"
)

func StartApp(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Environment == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(cfg.CollectorHost)
		if err != nil {
			log.Error().Err(err).Str("component", "StartApp").Msg("")
		} else {
			defer func() {
				if err := tracerProvider.Shutdown(context.Background()); err != nil {
					log.Error().Err(err).Str("component", "StartApp").Msg("")
				}
			}()
		}
	}

	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Str("component", "StartApp").Msg("")
	}

	userRepo := repository.CreateUserRepository(store)
	sessionRepo := repository.CreateSessionRepository(store)
	settingsRepo := repository.CreateSettingsRepository(store)
	orderRepo := repository.CreateOrderRepository(store)
	chatRepo := repository.CreateChatRepository(store)

	notifier := notification.CreateLogNotifier()

	authService := service.CreateAuthService(userRepo, sessionRepo, cfg.AdminPassword, time.Duration(cfg.AuthLatencyMillis)*time.Millisecond)
	orderService := service.CreateOrderService(orderRepo, settingsRepo, notifier)
	settingsService := service.CreateSettingsService(settingsRepo)
	chatService := service.CreateChatService(chatRepo, settingsRepo)

	if err := Seed(context.Background(), userRepo, settingsRepo, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Str("component", "StartApp").Msg("")
	}

	authService.Subscribe(func(session *domain.Session) {
		if session == nil {
			log.Info().Str("component", "authObserver").Msg("no active session")
			return
		}
		log.Info().Str("component", "authObserver").Str("uid", session.UID).Str("email", session.Email).Msg("session changed")
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger)
	e.Use(tracingMiddleware)
	e.Use(echoprometheus.NewMiddleware("gtshop"))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", cfg.MetricsPort)); err != nil {
			log.Error().Err(err).Str("component", "StartApp").Msg("")
		}
	}()

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "pong"})
	})

	controller.CreateAuthController(e, authService)
	controller.CreateShopController(e, settingsService)
	controller.CreateOrderController(e, orderService, authService)
	controller.CreateAdminController(e, orderService, settingsService, authService)
	controller.CreateChatController(e, chatService)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.ServicePort)))
}

func tracingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tracer := otel.Tracer("gtshop")
		ctx, span := tracer.Start(c.Request().Context(), c.Request().Method+" "+c.Path())
		defer span.End()

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

package web

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"tasklist/internal/config"
	"tasklist/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// NewApp builds the fiber app with middleware and routes for h.
func NewApp(cfg config.ServerConfig, log *logger.Logger, h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          errorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(accessLog(log))

	SetupRoutes(app, h)
	return app
}

// SetupRoutes registers the task list routes on app.
func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Index)
	app.Post("/tasks", h.AddTask)
	app.Post("/tasks/:id/toggle", h.ToggleTask)
	app.Post("/tasks/:id/delete", h.DeleteTask)

	api := app.Group("/api")
	api.Get("/tasks", h.View)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// Serve listens on addr and serves app until ctx is cancelled.
// ready, if non-nil, receives the bound address once listening.
func Serve(ctx context.Context, app *fiber.App, addr string, log *logger.Logger, ready chan<- string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	log.Infow("server_started", "addr", ln.Addr().String())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	log.Info("server exited gracefully")
	return nil
}

func accessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		log.Debugw("http_access",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", reqID,
		)
		return err
	}
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code < fiber.StatusInternalServerError {
			log.Warnw("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
			)
		} else {
			log.Errorw("request error",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

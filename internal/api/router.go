// Package api serves the translate endpoint the submit handler talks to.
//
// The router only defines "/translate"; the full path depends on the prefix
// it is mounted under, and clients must be configured with the same path.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/transgate/internal/payload"
)

const DefaultPrefix = "/api"

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

type Server struct {
	engine Engine
	logger *slog.Logger
}

func NewServer(engine Engine, logger *slog.Logger) *Server {
	if engine == nil {
		engine = Placeholder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, logger: logger}
}

// Router builds the echo instance with the translate route mounted under
// prefix and a /healthz probe at the root.
func (s *Server) Router(prefix string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:  true,
			LogURI:     true,
			LogStatus:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency))
				return nil
			},
		}),
	)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	g := e.Group(strings.TrimRight(prefix, "/"))
	g.POST("/translate", s.Translate)

	return e
}

// Translate handles POST /translate.
func (s *Server) Translate(c echo.Context) error {
	var body payload.Request
	if err := c.Bind(&body); err != nil {
		s.logger.Warn("translate - failed to bind body", slog.Any("err", err))
		return c.JSON(http.StatusBadRequest, ErrorBody{Detail: "Invalid request body"})
	}

	sourceLang := payload.SourceLangOrDefault(body.SourceLang)
	text := norm.NFC.String(strings.TrimSpace(body.Text))
	targetLangs := payload.CleanLangs(body.TargetLangs)

	if text == "" {
		return c.JSON(http.StatusBadRequest, ErrorBody{Detail: "Missing or empty text"})
	}
	if len(targetLangs) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorBody{Detail: "At least one target language required"})
	}

	result, err := s.engine.Translate(c.Request().Context(), text, sourceLang, targetLangs)
	if err != nil {
		s.logger.Error("translation failed", slog.Any("err", err))
		return c.JSON(http.StatusInternalServerError, ErrorBody{Detail: "Translation failed"})
	}

	return c.JSON(http.StatusOK, result)
}

// Serve runs the router on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr, prefix string) error {
	e := s.Router(prefix)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", addr), slog.String("prefix", prefix))
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return e.Shutdown(context.Background())
	}
}

package catalogapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/jsonstore"
	"go.uber.org/zap"
)

// Server exposes the three catalog stores as REST resources.
type Server struct {
	cfg  *config.AppConfig
	echo *echo.Echo

	products *jsonstore.Collection[domain.Product]
	parking  *jsonstore.Collection[domain.ParkingRecord]
	birds    *jsonstore.Collection[domain.Bird]
}

func NewServer(
	cfg *config.AppConfig,
	products *jsonstore.Collection[domain.Product],
	parking *jsonstore.Collection[domain.ParkingRecord],
	birds *jsonstore.Collection[domain.Bird],
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Web.Debug
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	s := &Server{
		cfg:      cfg,
		echo:     e,
		products: products,
		parking:  parking,
		birds:    birds,
	}
	s.registerProductRoutes()
	s.registerParkingRoutes()
	s.registerBirdRoutes()
	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	zap.L().Info("catalog api listening", zap.String("listen", s.cfg.WebListen()))
	return s.echo.Start(s.cfg.WebListen())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

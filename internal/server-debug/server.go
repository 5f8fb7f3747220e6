package serverdebug

import (
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/buildinfo"
	internalerrors "github.com/DanishKodeMonkey/webserver-node-experiment/internal/errors"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/logger"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/resolver"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/routes"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/server"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/server/errhandler"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

type pagesInspector interface {
	Routes() []routes.Route
	FileSize(file string) int64
	NotFoundFile() string
	Stats() resolver.Stats
}

type Options struct {
	addr           string
	pages          pagesInspector
	productionMode bool
}

type OptOptionsSetter func(o *Options)

func NewOptions(addr string, pages pagesInspector, options ...OptOptionsSetter) Options {
	o := Options{
		addr:  addr,
		pages: pages,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func WithProductionMode(opt bool) OptOptionsSetter {
	return func(o *Options) { o.productionMode = opt }
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("addr", o.addr, "required,hostname_port"),
		validator.Field("pages", o.pages, "required"),
	)
}

type Server struct {
	*server.Server

	lg    *zap.Logger
	pages pagesInspector
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	s := &Server{
		lg:    lg,
		pages: opts.pages,
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, opts.productionMode, errhandler.JSONResponder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(lg, opts.addr, s.register, errHandler.Handle))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}
	s.Server = srv

	return s, nil
}

func (s *Server) register(e *echo.Echo) {
	index := newIndexPage()

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))
	index.addPage("/log/level", "Get current log level")

	{
		pprofMux := http.NewServeMux()
		pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
		pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
		index.addPage("/debug/pprof/", "Go std profiler")
		index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")
	}

	e.GET("/debug/error", s.DebugError)
	index.addPage("/debug/error", "Debug Sentry error event")

	e.GET("/routes", s.Routes)
	index.addPage("/routes", "Route table with page sizes")

	e.GET("/routes.json", s.RoutesJSON)
	index.addPage("/routes.json", "Route table as JSON")

	e.GET("/stats", s.Stats)
	index.addPage("/stats", "Responses by kind since start")

	e.GET("/schema/pages", s.SchemaPages)
	index.addPage("/schema/pages", "Get pages OpenAPI specification")

	e.GET("/", index.handler)
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

func (s *Server) DebugError(eCtx echo.Context) error {
	s.lg.Error("look for me in the sentry")

	return eCtx.String(http.StatusOK, "event sent")
}

func (s *Server) Stats(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.pages.Stats())
}

func (s *Server) SchemaPages(eCtx echo.Context) error {
	swagger, err := PagesSchema(eCtx.Request().Context(), s.pages.Routes())
	if err != nil {
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot build pages schema", err)
	}

	return eCtx.JSON(http.StatusOK, swagger)
}

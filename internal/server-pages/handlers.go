package serverpages

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/resolver"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/handlers_mocks.gen.go -package=serverpagesmocks
type pageResolver interface {
	Resolve(path string) resolver.Response
}

type Options struct {
	logger   *zap.Logger
	resolver pageResolver
}

type OptOptionsSetter func(o *Options)

func NewOptions(logger *zap.Logger, resolver pageResolver, options ...OptOptionsSetter) Options {
	o := Options{
		logger:   logger,
		resolver: resolver,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("logger", o.logger, "required"),
		validator.Field("resolver", o.resolver, "required"),
	)
}

type Handlers struct {
	Options
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}
	return Handlers{Options: opts}, nil
}

// Register mounts the page handler on every path. Other methods end up
// in the error handler with 405.
func (h Handlers) Register(e *echo.Echo) {
	e.GET("/*", h.GetPage)
	e.HEAD("/*", h.GetPage)
}

func (h Handlers) GetPage(eCtx echo.Context) error {
	path := requestPath(eCtx)
	resp := h.resolver.Resolve(path)
	h.logger.Debug("page resolved",
		zap.String("path", path),
		zap.Int("status", resp.Status),
		zap.Int("size", len(resp.Body)),
	)
	return eCtx.Blob(resp.Status, resp.ContentType, resp.Body)
}

// requestPath is the request target exactly as the client sent it,
// query string included.
func requestPath(eCtx echo.Context) string {
	req := eCtx.Request()
	if req.RequestURI != "" {
		return req.RequestURI
	}
	return req.URL.RequestURI()
}

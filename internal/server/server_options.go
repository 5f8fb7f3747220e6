package server

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

type Options struct {
	logger            *zap.Logger
	addr              string
	handlersRegistrar func(e *echo.Echo)
	errHandler        echo.HTTPErrorHandler
	middlewares       []echo.MiddlewareFunc
}

type OptOptionsSetter func(o *Options)

func NewOptions(
	logger *zap.Logger,
	addr string,
	handlersRegistrar func(e *echo.Echo),
	errHandler echo.HTTPErrorHandler,
	options ...OptOptionsSetter,
) Options {
	o := Options{
		logger:            logger,
		addr:              addr,
		handlersRegistrar: handlersRegistrar,
		errHandler:        errHandler,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// WithMiddlewares adds middlewares running after the request logger and
// before routing.
func WithMiddlewares(opt ...echo.MiddlewareFunc) OptOptionsSetter {
	return func(o *Options) { o.middlewares = append(o.middlewares, opt...) }
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("logger", o.logger, "required"),
		validator.Field("addr", o.addr, "required,hostname_port"),
		validator.Field("handlersRegistrar", o.handlersRegistrar, "required"),
		validator.Field("errHandler", o.errHandler, "required"),
	)
}

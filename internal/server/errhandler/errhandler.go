package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	internalerrors "github.com/DanishKodeMonkey/webserver-node-experiment/internal/errors"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

// Responder writes the error response. The status is already a valid HTTP status.
type Responder func(eCtx echo.Context, status int, code int, msg string, details string) error

type Options struct {
	logger         *zap.Logger
	productionMode bool
	responder      Responder
}

type OptOptionsSetter func(o *Options)

func NewOptions(logger *zap.Logger, productionMode bool, responder Responder, options ...OptOptionsSetter) Options {
	o := Options{
		logger:         logger,
		productionMode: productionMode,
		responder:      responder,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("logger", o.logger, "required"),
		validator.Field("responder", o.responder, "required"),
	)
}

type Handler struct {
	lg             *zap.Logger
	productionMode bool
	responder      Responder
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:             opts.logger,
		productionMode: opts.productionMode,
		responder:      opts.responder,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	code, msg, details := h.processError(err)

	status := code
	if !internalerrors.IsHTTPStatus(status) {
		status = http.StatusInternalServerError
	}

	if err2 := h.responder(eCtx, status, code, msg, details); err2 != nil {
		h.lg.Error("error handler response", zap.Error(err2), zap.NamedError("cause", err))
	}
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	// If production mode is ON method should return only code and message and hide details.
	if h.productionMode {
		details = ""
	}

	return code, msg, details
}

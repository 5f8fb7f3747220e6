package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRecovery turns a handler panic into a 500 passed to the error handler.
func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			lg.With(
				zap.Error(err),
				zap.String("uri", eCtx.Request().RequestURI),
				zap.String("request_id", eCtx.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("stack", string(stack)),
			).Error("panic recovered")
			return err
		},
	})
}

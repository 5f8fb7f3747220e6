package errhandler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// TextResponder writes "<code> <message>" and the details on the next line.
func TextResponder(eCtx echo.Context, status int, code int, msg string, details string) error {
	var b strings.Builder
	b.WriteString(strconv.Itoa(code))
	b.WriteString(" ")
	b.WriteString(msg)
	if details != "" {
		b.WriteString("\n")
		b.WriteString(details)
	}
	return eCtx.String(status, b.String())
}

type Error struct {
	Code    int     `json:"code"`
	Details *string `json:"details,omitempty"`
	Message string  `json:"message"`
}

type Response struct {
	Error Error `json:"error"`
}

func JSONResponder(eCtx echo.Context, status int, code int, msg string, details string) error {
	resp := Response{
		Error: Error{
			Code:    code,
			Message: msg,
		},
	}
	if details != "" {
		resp.Error.Details = &details
	}
	return eCtx.JSON(status, resp)
}

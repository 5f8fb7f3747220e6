package logger

import (
	"github.com/getsentry/sentry-go"
)

func NewSentryClient(dsn, env, version string) (*sentry.Client, error) {
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          version,
		Environment:      env,
		AttachStacktrace: true,
	})
}

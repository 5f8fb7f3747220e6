package logger

import (
	"go.uber.org/multierr"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

type Options struct {
	level          string
	productionMode bool
	sentryDsn      string
	sentryEnv      string
}

type OptOptionsSetter func(o *Options)

func NewOptions(level string, options ...OptOptionsSetter) Options {
	o := Options{level: level}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func WithProductionMode(opt bool) OptOptionsSetter {
	return func(o *Options) { o.productionMode = opt }
}

func WithSentryDsn(opt string) OptOptionsSetter {
	return func(o *Options) { o.sentryDsn = opt }
}

func WithSentryEnv(opt string) OptOptionsSetter {
	return func(o *Options) { o.sentryEnv = opt }
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("level", o.level, "required,oneof=debug info warn error"),
		validator.Field("sentryDsn", o.sentryDsn, "omitempty,url"),
	)
}

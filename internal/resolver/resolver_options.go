package resolver

import (
	"io/fs"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/routes"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

type Options struct {
	logger       *zap.Logger
	pages        fs.FS
	table        *routes.Table
	notFoundFile string
}

type OptOptionsSetter func(o *Options)

func NewOptions(
	logger *zap.Logger,
	pages fs.FS,
	table *routes.Table,
	notFoundFile string,
	options ...OptOptionsSetter,
) Options {
	o := Options{
		logger:       logger,
		pages:        pages,
		table:        table,
		notFoundFile: notFoundFile,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("logger", o.logger, "required"),
		validator.Field("pages", o.pages, "required"),
		validator.Field("table", o.table, "required"),
		validator.Field("notFoundFile", o.notFoundFile, "required"),
	)
}

//go:build e2e

package pagesclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/multierr"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

type Options struct {
	baseURL   string
	debugMode bool
}

type OptOptionsSetter func(o *Options)

func NewOptions(baseURL string, options ...OptOptionsSetter) Options {
	o := Options{baseURL: baseURL}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func WithDebugMode(opt bool) OptOptionsSetter {
	return func(o *Options) { o.debugMode = opt }
}

func (o *Options) Validate() error {
	return multierr.Combine(
		validator.Field("baseURL", o.baseURL, "required,url"),
	)
}

// Client fetches pages as a browser would, without following redirects.
type Client struct {
	cli *resty.Client
}

type Page struct {
	Status      int
	ContentType string
	Body        string
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	cli := resty.New()
	cli.SetDebug(opts.debugMode)
	cli.SetBaseURL(opts.baseURL)
	cli.SetRedirectPolicy(resty.NoRedirectPolicy())

	return &Client{cli: cli}, nil
}

// Get requests the target verbatim: path and query are not normalized.
func (c *Client) Get(ctx context.Context, target string) (Page, error) {
	return c.Do(ctx, http.MethodGet, target)
}

func (c *Client) Do(ctx context.Context, method, target string) (Page, error) {
	resp, err := c.cli.R().
		SetContext(ctx).
		Execute(method, target)
	if err != nil {
		return Page{}, fmt.Errorf("%s %s: %v", method, target, err)
	}

	return Page{
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        string(resp.Body()),
	}, nil
}

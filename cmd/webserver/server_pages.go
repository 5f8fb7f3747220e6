package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/config"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/resolver"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/routes"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/server"
	serverpages "github.com/DanishKodeMonkey/webserver-node-experiment/internal/server-pages"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/server/errhandler"
)

const nameServerPages = "server-pages"

func initServerPages(
	productionMode bool,
	addr string,
	pagesCfg config.PagesConfig,
) (*server.Server, *resolver.Resolver, error) {
	lg := zap.L().Named(nameServerPages)

	rr := make([]routes.Route, 0, len(pagesCfg.Routes))
	for _, r := range pagesCfg.Routes {
		rr = append(rr, routes.Route{Path: r.Path, File: r.File, Status: r.Status})
	}

	table, err := routes.New(rr...)
	if err != nil {
		return nil, nil, fmt.Errorf("build route table: %v", err)
	}

	if fi, err := os.Stat(pagesCfg.Dir); err != nil || !fi.IsDir() {
		lg.Warn("pages dir is not available, every request gets the fallback page",
			zap.String("dir", pagesCfg.Dir), zap.Error(err))
	}

	pages, err := resolver.New(resolver.NewOptions(
		zap.L().Named("resolver"),
		os.DirFS(pagesCfg.Dir),
		table,
		pagesCfg.NotFoundFile,
	))
	if err != nil {
		return nil, nil, fmt.Errorf("create resolver: %v", err)
	}

	handlers, err := serverpages.NewHandlers(serverpages.NewOptions(lg, pages))
	if err != nil {
		return nil, nil, fmt.Errorf("create handlers: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.TextResponder))
	if err != nil {
		return nil, nil, fmt.Errorf("create err handler: %v", err)
	}

	var opts []server.OptOptionsSetter
	if pagesCfg.AssetsDir != "" {
		opts = append(opts, server.WithMiddlewares(serverpages.NewAssets(pagesCfg.AssetsDir)))
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		handlers.Register,
		errHandler.Handle,
		opts...,
	))
	if err != nil {
		return nil, nil, fmt.Errorf("build server: %v", err)
	}

	return srv, pages, nil
}

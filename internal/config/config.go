package config

import "net/http"

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Sentry  SentryConfig  `toml:"sentry"`
	Servers ServersConfig `toml:"servers"`
	Pages   PagesConfig   `toml:"pages"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Pages PagesServerConfig `toml:"pages"`
	Debug DebugServerConfig `toml:"debug"`
}

type PagesServerConfig struct {
	// Addr is not read from the file, it is built from the PORT variable.
	Addr string `toml:"-" validate:"required,hostname_port"`
}

type DebugServerConfig struct {
	// Empty Addr disables the debug server.
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

type PagesConfig struct {
	Dir          string        `toml:"dir" validate:"required"`
	AssetsDir    string        `toml:"assets_dir"`
	NotFoundFile string        `toml:"not_found_file" validate:"required"`
	Routes       []RouteConfig `toml:"routes" validate:"required,min=1,dive"`
}

type RouteConfig struct {
	Path   string `toml:"path" validate:"required"`
	File   string `toml:"file" validate:"required"`
	Status int    `toml:"status" validate:"omitempty,min=100,max=599"`
}

// Default describes the site served when no config file is given:
// three pages, the teapot and the images directory.
// It has no debug server address, so the debug server runs only when a
// config file sets servers.debug.addr.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: "dev"},
		Log:    LogConfig{Level: "info"},
		Pages:  defaultPages(),
	}
}

func defaultPages() PagesConfig {
	return PagesConfig{
		Dir:          "pages",
		AssetsDir:    "images",
		NotFoundFile: "404.html",
		Routes: []RouteConfig{
			{Path: "/", File: "index.html"},
			{Path: "/contact-me", File: "contact-me.html"},
			{Path: "/about", File: "about.html"},
			{Path: "/418", File: "418.html", Status: http.StatusTeapot},
			{Path: "*", File: "404.html", Status: http.StatusNotFound},
		},
	}
}

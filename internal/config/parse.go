package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/validator"
)

const (
	defaultPort  = "3000"
	catchAllPath = "*"
)

type env struct {
	Port string `envconfig:"PORT" default:"3000"`
}

// ParseAndValidate reads the config file (if filename is not empty) and
// the environment. Sections missing from the file keep their defaults.
func ParseAndValidate(filename string) (Config, error) {
	conf := Config{}
	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, err
		}
	}
	conf.fillDefaults()

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}
	if e.Port == "" {
		e.Port = defaultPort
	}
	conf.Servers.Pages.Addr = net.JoinHostPort("", e.Port)

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}
	if err := conf.Pages.validateCatchAll(); err != nil {
		return conf, err
	}

	return conf, nil
}

// LoadDotEnv puts variables from the given files into the process
// environment. Missing files are skipped, already set variables win.
func LoadDotEnv(filenames ...string) error {
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %q: %v", f, err)
		}
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()

	if c.Global.Env == "" {
		c.Global.Env = def.Global.Env
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Pages.Dir == "" && c.Pages.NotFoundFile == "" && len(c.Pages.Routes) == 0 {
		c.Pages = def.Pages
	}
	for i := range c.Pages.Routes {
		r := &c.Pages.Routes[i]
		if r.Status != 0 {
			continue
		}
		r.Status = http.StatusOK
		if r.Path == catchAllPath {
			r.Status = http.StatusNotFound
		}
	}
}

// validateCatchAll keeps the "*" route and not_found_file in agreement,
// the resolver serves not_found_file for every unmatched path.
func (c PagesConfig) validateCatchAll() error {
	for _, r := range c.Routes {
		if r.Path != catchAllPath {
			continue
		}
		if r.File != c.NotFoundFile {
			return fmt.Errorf("route %q: file %q differs from not_found_file %q", r.Path, r.File, c.NotFoundFile)
		}
		if r.Status != http.StatusNotFound {
			return fmt.Errorf("route %q: status must be %d, got %d", r.Path, http.StatusNotFound, r.Status)
		}
	}
	return nil
}

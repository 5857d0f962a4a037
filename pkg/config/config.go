// Package config loads service settings from the environment and
// command-line flags. Flags win over environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EVENTNAV_"

// Config holds the service settings.
type Config struct {
	Port             int           `env:"PORT" envDefault:"9876"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"json"`
	NavFile          string        `env:"NAV_FILE"`
	DefaultTitle     string        `env:"DEFAULT_TITLE" envDefault:"Home"`
	DashboardPath    string        `env:"DASHBOARD_PATH" envDefault:"/dashboard"`
	CollapseSections bool          `env:"COLLAPSE_SECTIONS" envDefault:"false"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTIssuer        string        `env:"JWT_ISSUER"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxHeaderBytes   int           `env:"MAX_HEADER_BYTES" envDefault:"1048576"`
	TLSCertFile      string        `env:"TLS_CERT"`
	TLSKeyFile       string        `env:"TLS_KEY"`
}

// Load reads the process environment, then applies args.
// It returns pflag.ErrHelp when help was requested.
func Load(args []string, usage io.Writer) (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix}, args, usage)
}

// LoadFrom is Load with an explicit environment, for tests.
func LoadFrom(environ map[string]string, args []string, usage io.Writer) (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environ}, args, usage)
}

func load(opts env.Options, args []string, usage io.Writer) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := cfg.flagSet(usage)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// flagSet binds flags to cfg so values parsed from the environment stay
// the defaults and only flags given on the command line override them.
func (c *Config) flagSet(usage io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("eventnav", pflag.ContinueOnError)
	if usage != nil {
		fs.SetOutput(usage)
	}

	fs.IntVarP(&c.Port, "port", "p", c.Port, "port to run the server on")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json or text")
	fs.StringVar(&c.NavFile, "nav-file", c.NavFile, "YAML navigation definition (default: built-in tree)")
	fs.StringVar(&c.DefaultTitle, "default-title", c.DefaultTitle, "page title when no navigation item matches")
	fs.StringVar(&c.DashboardPath, "dashboard-path", c.DashboardPath, "path active for itself and everything beneath it")
	fs.BoolVar(&c.CollapseSections, "collapse-sections", c.CollapseSections, "drop section titles and dividers left empty by role filtering")
	fs.StringVar(&c.JWTIssuer, "jwt-issuer", c.JWTIssuer, "required issuer of identity tokens")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "grace period for in-flight requests")
	fs.StringVar(&c.TLSCertFile, "tls-cert", c.TLSCertFile, "TLS certificate file, serves HTTPS together with --tls-key")
	fs.StringVar(&c.TLSKeyFile, "tls-key", c.TLSKeyFile, "TLS private key file")

	return fs
}

// Validate checks the settings and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.DashboardPath != "" && !strings.HasPrefix(c.DashboardPath, "/") {
		errs = append(errs, fmt.Errorf("dashboard path %q must be absolute", c.DashboardPath))
	}
	if c.ShutdownTimeout < 0 || c.IdleTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	if c.MaxHeaderBytes < 0 {
		errs = append(errs, fmt.Errorf("max header bytes %d must not be negative", c.MaxHeaderBytes))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errs = append(errs, errors.New("tls cert and key must be set together"))
	}

	return errors.Join(errs...)
}

// TLS reports whether the server should serve HTTPS.
func (c *Config) TLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Anonymous reports whether identity tokens are disabled.
func (c *Config) Anonymous() bool {
	return c.JWTSecret == ""
}

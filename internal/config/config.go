package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

const productionEnv = "production"

type Config struct {
	Address        string        `env:"RUN_ADDRESS"     envDefault:"localhost:8080"`
	UpstreamURL    string        `env:"UPSTREAM_URL"    envDefault:"https://ecopay-eight.vercel.app/api"`
	APIBaseURL     string        `env:"API_BASE_URL"    envDefault:"http://localhost:8080/proxy-api"`
	SessionPath    string        `env:"SESSION_PATH"    envDefault:"ecopay-session.db"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LogLvl         string        `env:"LOG_LVL"         envDefault:"info"`
	MockMode       bool          `env:"MOCK_MODE"       envDefault:"false"`
	AppEnv         string        `env:"APP_ENV"         envDefault:"development"`
	CORSOrigin     string        `env:"CORS_ORIGIN"     envDefault:"https://ecopay-eight.vercel.app"`
	JWTSecret      string        `env:"JWT_SECRET"      envDefault:"ecopay-dev-secret"`
}

// New reads the environment and then the process command line.
func New() *Config {
	cfg, _ := Parse(flag.CommandLine, os.Args[1:])
	return cfg
}

// Parse reads the environment first and lets flags registered on fs override it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	env.Parse(cfg)

	fs.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run the proxy on")
	fs.StringVar(&cfg.UpstreamURL, "u", cfg.UpstreamURL, "upstream api url")
	fs.StringVar(&cfg.APIBaseURL, "b", cfg.APIBaseURL, "api base url used by the client")
	fs.StringVar(&cfg.SessionPath, "s", cfg.SessionPath, "session database path, empty keeps the session in memory")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	fs.BoolVar(&cfg.MockMode, "m", cfg.MockMode, "serve development fixtures instead of relaying")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.UpstreamURL = withScheme(cfg.UpstreamURL)
	cfg.APIBaseURL = withScheme(cfg.APIBaseURL)

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == productionEnv
}

func withScheme(addr string) string {
	if addr == "" {
		return addr
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		return "http://" + addr
	}
	return addr
}

package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the runtime parameters for the viewers. Values come
// from GRIDKIT_* environment variables (optionally via a .env file) and
// can be overridden by command-line flags.
type Config struct {
	Sim   string `env:"SIM" envDefault:"life"`
	Scale int    `env:"SCALE" envDefault:"3"`
	TPS   int    `env:"TPS" envDefault:"60"`
	Seed  int64  `env:"SEED" envDefault:"42"`
	// Params is a comma separated list of key=value pairs handed to the
	// simulation factory, e.g. "w=128,h=96".
	Params string `env:"PARAMS"`
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42}
}

// LoadConfig reads the configuration from the environment. Missing .env
// files are ignored; the process environment always wins over them.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: %s: %w", f, err)
		}
	}
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "GRIDKIT_"}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Params, "params", c.Params, "simulation parameters as k=v,k=v")
}

// SimParams splits Params into the map a core.Factory expects. Entries
// without '=' are ignored.
func (c *Config) SimParams() map[string]string {
	out := map[string]string{}
	for _, kv := range strings.Split(c.Params, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Validate rejects values no viewer can run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	return nil
}

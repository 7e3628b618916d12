package appconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the --env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the dashboard server.
type Config struct {
	Port      int         `mapstructure:"port"`
	Env       Environment `mapstructure:"-"`
	EnvName   string      `mapstructure:"env"`
	LogLevel  string      `mapstructure:"log_level"`
	RateLimit int         `mapstructure:"rate_limit"`
	Data      DataConfig  `mapstructure:"data"`
	Years     YearRange   `mapstructure:"years"`
	// OverviewCountries is the number of top-trend countries drawn in the
	// full time range overview chart.
	OverviewCountries int `mapstructure:"overview_countries"`
}

// DataConfig points at the four source tables, relative to Dir unless absolute.
type DataConfig struct {
	Dir           string `mapstructure:"dir"`
	Emissions     string `mapstructure:"emissions"`
	Sectors       string `mapstructure:"sectors"`
	Installations string `mapstructure:"installations"`
	Investments   string `mapstructure:"investments"`
}

type YearRange struct {
	First int `mapstructure:"first"`
	Last  int `mapstructure:"last"`
}

// List returns every year in the range, inclusive.
func (y YearRange) List() []int {
	if y.Last < y.First {
		return nil
	}
	years := make([]int, 0, y.Last-y.First+1)
	for year := y.First; year <= y.Last; year++ {
		years = append(years, year)
	}
	return years
}

// Path resolves a data file name against Dir.
func (d DataConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8051)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit", 100)
	v.SetDefault("overview_countries", 10)

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.emissions", "world_ghg_total_nona.csv")
	v.SetDefault("data.sectors", "industry_co2.csv")
	v.SetDefault("data.installations", "installed_renewable.xlsx")
	v.SetDefault("data.investments", "investment.xlsx")

	v.SetDefault("years.first", 1990)
	v.SetDefault("years.last", 2020)
}

// Load reads configuration from defaults, an optional config file and
// SDGDASH_* environment variables, in increasing order of precedence.
// When configFile is empty the file is searched for in ./config and
// $HOME/.sdgdash and is not required to exist.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sdgdash"))
		}
	}

	v.SetEnvPrefix("SDGDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be served.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Years.Last < c.Years.First {
		return fmt.Errorf("invalid year range %d-%d", c.Years.First, c.Years.Last)
	}
	if c.Data.Emissions == "" || c.Data.Sectors == "" || c.Data.Installations == "" || c.Data.Investments == "" {
		return fmt.Errorf("all four data files must be configured")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-default:"dev"`
	} `yaml:"app" env-prefix:"APP_"`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Input struct {
		Packages string `yaml:"packages" env:"PACKAGES"`
	} `yaml:"input" env-prefix:"INPUT_"`
}

// Load reads the config file at filePath and the environment on top of it.
// With an empty filePath only the environment is used.
func Load(filePath string) (*Config, error) {
	cfg := &Config{}

	var err error
	if filePath == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(filePath, cfg)
	}
	if err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	if cfg.App.Env != Production && cfg.App.Env != Development {
		return nil, configNotLoadedErr("invalid env %q", cfg.App.Env)
	}

	return cfg, nil
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}

// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	ODataAPI   `yaml:"odata_api"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ODataAPI структура для настройки подключения к OData API Tweede Kamer
type ODataAPI struct {
	BaseURL      string        `yaml:"base_url" env-default:"https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0"`
	TimeoutAPI   time.Duration `yaml:"timeoutapi" env-default:"30s"`
	DefaultLimit int           `yaml:"default_limit" env-default:"1000"`
	MaxLimit     int           `yaml:"max_limit" env-default:"5000"`
}

// MustLoad функция для загрузки конфига, возвращает конфиг, сгенерированный из файла по пути CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"ODataAPI:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"  DefaultLimit: %d\n"+
			"  MaxLimit: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.BaseURL,
		c.TimeoutAPI,
		c.DefaultLimit,
		c.MaxLimit,
	)
}

package config

import (
	"os"

	"github.com/go-yaml/yaml"

	"github.com/niya-shroff/folio/internal/domain"
)

type Config struct {
	Site   domain.Config `yaml:"site"`
	Server Server        `yaml:"server"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`

	Storage Storage `yaml:"storage"`
	SMTP    SMTP    `yaml:"smtp"`
}

// Storage configures the object store media uploads land in.
type Storage struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	PublicURL string `yaml:"publicUrl"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	// Secrets prefer the environment over the config file.
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		config.Server.PostgresDsn = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		config.Server.SMTP.Password = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		config.Server.Storage.SecretKey = v
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}

	return config, nil
}

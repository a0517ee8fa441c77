package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Classifier modes selectable via config. ModeAuto picks the richest
// variant the configuration allows.
const (
	ModeAuto       = "auto"
	ModeMock       = "mock"
	ModeLocal      = "local"
	ModeGenerative = "generative"
	ModeHybrid     = "hybrid"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Client struct {
		Origin string `yaml:"origin"`
	} `yaml:"client"`

	Classifier struct {
		Mode string `yaml:"mode"`
	} `yaml:"classifier"`

	OpenAI struct {
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"openai"`

	Scorer struct {
		PythonBin      string `yaml:"pythonBin"`
		Script         string `yaml:"script"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"scorer"`

	Trainer struct {
		Script         string `yaml:"script"`
		DatasetPath    string `yaml:"datasetPath"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"trainer"`

	Database struct {
		Driver   string `yaml:"driver"` // "", "mysql" or "postgres"
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`
}

// Load baca file config.yaml; secrets may come from the environment
// instead of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Scorer.PythonBin == "" {
		c.Scorer.PythonBin = "python3"
	}
	if c.Scorer.TimeoutSeconds == 0 {
		c.Scorer.TimeoutSeconds = 20
	}
	if c.Trainer.TimeoutSeconds == 0 {
		c.Trainer.TimeoutSeconds = 120
	}
	if c.Classifier.Mode == "" {
		c.Classifier.Mode = ModeAuto
	}
}

// HasRealKey reports whether a usable OpenAI credential is configured.
// An empty key or the .env placeholder counts as absent, which forces
// mock mode so development never burns quota.
func (c *Config) HasRealKey() bool {
	key := strings.TrimSpace(c.OpenAI.APIKey)
	return key != "" && !strings.Contains(key, "your_key_here")
}

// HasScorer reports whether a local scoring script is configured.
func (c *Config) HasScorer() bool {
	return strings.TrimSpace(c.Scorer.Script) != ""
}

// ResolveMode maps ModeAuto to a concrete classifier mode based on what
// is configured. Explicit modes pass through untouched.
func (c *Config) ResolveMode() string {
	if c.Classifier.Mode != ModeAuto {
		return c.Classifier.Mode
	}
	switch {
	case c.HasRealKey() && c.HasScorer():
		return ModeHybrid
	case c.HasRealKey():
		return ModeGenerative
	case c.HasScorer():
		return ModeLocal
	default:
		return ModeMock
	}
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds a lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

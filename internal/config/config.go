package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configPathEnv = "CONFIG_PATH"
)

type config struct {
	Cbr      CbrConfig      `yaml:"cbr"`
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type Service struct {
	config config
}

// New loads .env (if any) and then the YAML config named by CONFIG_PATH,
// falling back to data/config.yaml.
func New() (*Service, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	path := os.Getenv(configPathEnv)
	if path == "" {
		path = configFile
	}
	return NewFromFile(path)
}

// NewFromFile reads the config at path. A missing file yields defaults.
func NewFromFile(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func defaults() config {
	return config{
		Cbr: CbrConfig{
			FeedURL: defaultFeedURL,
		},
		App: AppConfig{
			Width: defaultFieldWidth,
		},
		Database: DatabaseConfig{
			DriverName: defaultDriver,
			FilePath:   defaultDatabasePath,
		},
	}
}

func (s *Service) Cbr() *CbrConfig {
	return &s.config.Cbr
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Database() *DatabaseConfig {
	return &s.config.Database
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

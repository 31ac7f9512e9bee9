package config

const (
	defaultDriver       = "sqlite3"
	defaultDatabasePath = "bicycle_shop.db"
)

type DatabaseConfig struct {
	DriverName string `yaml:"driver"`
	FilePath   string `yaml:"path"`
}

func (s *DatabaseConfig) Driver() string {
	return s.DriverName
}

func (s *DatabaseConfig) Path() string {
	return s.FilePath
}

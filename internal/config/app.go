package config

const defaultFieldWidth = 200

type AppConfig struct {
	Width float32 `yaml:"field-width"`
}

func (s *AppConfig) FieldWidth() float32 {
	return s.Width
}

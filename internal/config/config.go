package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	School     SchoolConfig   `mapstructure:"school"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SchoolConfig struct {
	Name string `mapstructure:"name"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		School:   SchoolConfig{Name: "Ban Bang Nam Chuet School"},
	}
}

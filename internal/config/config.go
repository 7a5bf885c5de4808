package config

// Config is the root application configuration.
type Config struct {
	App AppConfig `yaml:"app"`
	Log LogConfig `yaml:"log"`
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Env  string `yaml:"env"  env:"APP_ENV"  env-default:"dev" validate:"oneof=dev prod"`
	Name string `yaml:"name" env:"APP_NAME" env-default:"academy-backend"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

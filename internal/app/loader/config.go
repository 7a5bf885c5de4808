package loader

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the dataset file paths and pipeline settings. Per the data
// contract there are no CLI flags: everything comes from YAML and env.
type Config struct {
	BatchesPath     string `yaml:"batches_path"     env:"LOADER_BATCHES_PATH"     validate:"required"`
	TraineesPath    string `yaml:"trainees_path"    env:"LOADER_TRAINEES_PATH"    validate:"required"`
	DailyPath       string `yaml:"daily_path"       env:"LOADER_DAILY_PATH"       validate:"required"`
	TenDayPath      string `yaml:"ten_day_path"     env:"LOADER_TEN_DAY_PATH"     validate:"required"`
	AssessmentsPath string `yaml:"assessments_path" env:"LOADER_ASSESSMENTS_PATH" validate:"required"`

	// SnapshotPath, when set, is where the built snapshot is cached as JSON.
	SnapshotPath string `yaml:"snapshot_path" env:"LOADER_SNAPSHOT_PATH"`

	// DryRun builds the snapshot without writing the cache file.
	DryRun bool `yaml:"dry_run" env:"LOADER_DRY_RUN"`
}

// LoadConfig reads loader configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("loader config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("loader config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("loader config: read env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("loader config: validate: %w", err)
	}

	return &cfg, nil
}

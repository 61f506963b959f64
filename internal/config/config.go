// Package config reads settings from the environment and an optional
// config file.
package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/akeil/gallery/internal/errors"
	"github.com/akeil/gallery/internal/logging"
)

// ConfigEnv names the variable that points to a config file.
const ConfigEnv = "GALLERY_CONFIG"

type Settings struct {
	File      string `yaml:"file" toml:"file" json:"file" env:"GALLERY_FILE" env-default:"./data/save.json" env-description:"Path to the gallery file"`
	Title     string `yaml:"title" toml:"title" json:"title" env:"GALLERY_TITLE" env-default:"My Gallery" env-description:"Title for a new gallery"`
	LogLevel  string `yaml:"log_level" toml:"log_level" json:"log_level" env:"GALLERY_LOG_LEVEL" env-default:"warning" env-description:"One of debug, info, warning, error"`
	Palette   string `yaml:"palette" toml:"palette" json:"palette" env:"GALLERY_PALETTE" env-default:"./data/palette.toml" env-description:"TOML file with named colors"`
	ExportDir string `yaml:"export_dir" toml:"export_dir" json:"export_dir" env:"GALLERY_EXPORT_DIR" env-default:"." env-description:"Output directory for exports"`
	CacheDir  string `yaml:"cache_dir" toml:"cache_dir" json:"cache_dir" env:"GALLERY_CACHE_DIR" env-description:"Directory for cached previews (default: user cache dir)"`
}

// Load reads settings from the environment.
//
// If path is empty, the file named by GALLERY_CONFIG is used, if any.
// Values from the environment override values from the file;
// defaults apply to whatever is left unset.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}

	var s Settings
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&s)
	} else {
		logging.Debug("Read config from %q", path)
		if _, serr := os.Stat(path); serr != nil {
			return nil, errors.NewIOError(serr, "cannot read config %q", path)
		}
		err = cleanenv.ReadConfig(path, &s)
	}
	if err != nil {
		return nil, errors.NewParseError(err, "invalid configuration")
	}

	return &s, nil
}

// Describe returns a description of the environment variables.
func Describe() string {
	var s Settings
	header := "Environment variables:"
	d, err := cleanenv.GetDescription(&s, &header)
	if err != nil {
		logging.Warning("Failed to describe settings: %v", err)
		return ""
	}
	return d
}

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// validLogLevels is the set of accepted log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ConfigurationManager defines the interface for loading and validating the
// .listarc configuration file.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading YAML configuration files.
type viperConfigManager struct {
	// basePath is the directory searched for .listarc.
	basePath string
	// configFile, when set, is read instead of searching basePath.
	configFile string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .listarc in basePath. If configFile is non-empty it is read directly and
// must exist.
func NewConfigurationManager(basePath, configFile string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath, configFile: configFile}
}

// DefaultConfig returns a Config populated with the built-in labels.
func DefaultConfig() *models.Config {
	return &models.Config{
		UI: models.UIConfig{
			Title:            "Lista de Tareas",
			PendingHeading:   "Tareas Pendientes",
			CompletedHeading: "Tareas Completadas",
		},
		LogLevel: "warn",
	}
}

// LoadConfig reads .listarc using Viper. If the file does not exist, the
// defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if cm.configFile != "" {
		v.SetConfigFile(cm.configFile)
	} else {
		v.SetConfigName(".listarc")
		v.SetConfigType("yaml")
		v.AddConfigPath(cm.basePath)
	}

	v.SetDefault("ui.title", cfg.UI.Title)
	v.SetDefault("ui.pending_heading", cfg.UI.PendingHeading)
	v.SetDefault("ui.completed_heading", cfg.UI.CompletedHeading)
	v.SetDefault("seed_file", "")
	v.SetDefault("event_log", "")
	v.SetDefault("log.level", cfg.LogLevel)

	v.SetEnvPrefix("LT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if cm.configFile != "" {
			return nil, fmt.Errorf("reading config %s: %w", cm.configFile, err)
		}
	}

	cfg.UI.Title = v.GetString("ui.title")
	cfg.UI.PendingHeading = v.GetString("ui.pending_heading")
	cfg.UI.CompletedHeading = v.GetString("ui.completed_heading")
	cfg.SeedFile = v.GetString("seed_file")
	cfg.EventLog = v.GetString("event_log")
	cfg.LogLevel = strings.ToLower(v.GetString("log.level"))

	return cfg, nil
}

// ValidateConfig checks cfg for invalid values and returns an error listing
// every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if strings.TrimSpace(cfg.UI.PendingHeading) == "" {
		errs = append(errs, "ui.pending_heading must not be empty")
	}
	if strings.TrimSpace(cfg.UI.CompletedHeading) == "" {
		errs = append(errs, "ui.completed_heading must not be empty")
	}
	if cfg.LogLevel != "" && !validLogLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Sprintf(
			"log.level %q is invalid, must be one of: debug, info, warn, error",
			cfg.LogLevel,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

package models

// UIConfig holds the labels shown on the board.
type UIConfig struct {
	Title            string `yaml:"title" mapstructure:"title"`
	PendingHeading   string `yaml:"pending_heading" mapstructure:"pending_heading"`
	CompletedHeading string `yaml:"completed_heading" mapstructure:"completed_heading"`
}

// Config holds application settings read from .listarc via Viper.
type Config struct {
	UI       UIConfig `yaml:"ui" mapstructure:"ui"`
	SeedFile string   `yaml:"seed_file,omitempty" mapstructure:"seed_file"`
	EventLog string   `yaml:"event_log,omitempty" mapstructure:"event_log"`
	LogLevel string   `yaml:"log_level" mapstructure:"log_level"`
}

package settings

type Config struct {
	Logger   Logger   `toml:"logger"`
	Scenario Scenario `toml:"scenario"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `toml:"file_log_name"`
	MaxBackups  int    `toml:"max_backups" validate:"gte=0"`
	MaxAge      int    `toml:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `toml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `toml:"compress"`
}

// Scenario is the configuration for the demonstration scenarios
type Scenario struct {
	QueueOps       int `toml:"queue_ops" validate:"gte=1"`
	QueueWindow    int `toml:"queue_window" validate:"gte=1,ltefield=QueueOps"`
	ResizeElements int `toml:"resize_elements" validate:"gte=1"`
	MaxCapacity    int `toml:"max_capacity" validate:"gte=0"` // 0 is unbounded
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Scenario: Scenario{
			QueueOps:       10000,
			QueueWindow:    50,
			ResizeElements: 1_000_000,
		},
	}
}

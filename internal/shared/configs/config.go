package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	Ingest    IngestConfig    `mapstructure:"ingest" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Reports   ReportsConfig   `mapstructure:"reports" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig addresses the document store: a root location plus the
// default database all collections live under.
type StorageConfig struct {
	RootDir  string `mapstructure:"root_dir" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

// IngestConfig holds the hit buffer flush thresholds. A flush fires when
// either threshold is reached, whichever occurs first.
type IngestConfig struct {
	BufferCount   int `mapstructure:"buffer_count" validate:"required,min=1"`
	BufferSeconds int `mapstructure:"buffer_seconds" validate:"required,min=1"`
}

// SchedulerConfig holds the window scheduler thresholds. DurationSeconds of 0
// means 5x the ingest buffer duration.
type SchedulerConfig struct {
	Count           int `mapstructure:"count" validate:"required,min=1"`
	DurationSeconds int `mapstructure:"duration_seconds" validate:"min=0"`
}

// ReportsConfig holds the report provider registration surface. Providers
// lists the enabled provider names; registered providers missing from the
// list are skipped at generation time with outcome NotRun.
type ReportsConfig struct {
	Providers         []string `mapstructure:"providers" validate:"required,min=1,unique"`
	LogoutPath        string   `mapstructure:"logout_path" validate:"required"`
	InactivityMinutes int      `mapstructure:"inactivity_minutes" validate:"required,min=1"`
	BrowserMinHits    int      `mapstructure:"browser_min_hits" validate:"required,min=1"`
}

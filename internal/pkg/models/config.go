package models

// Config is the root configuration of the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Import   ImportConfig   `mapstructure:"import"`
}

// AppConfig contains application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
	// ExtendedSchema selects the tran table variant that carries the
	// derived tran_date and file_name columns. The core variant stores
	// only the six raw columns and derives bucketing from datetime.
	ExtendedSchema bool `mapstructure:"extended_schema"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// ImportConfig contains import behavior configuration
type ImportConfig struct {
	// AbortOnStoreError aborts the whole batch on a store failure.
	// When false a failed row is counted as skipped and the batch continues.
	AbortOnStoreError bool `mapstructure:"abort_on_store_error"`
}

package config

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Compare struct {
		DefaultPrecision int  `env:"COMPARE_DEFAULT_PRECISION" flag:"compare-default-precision" validate:"omitempty,min=0" desc:"significant decimal digits used when a request does not set precision"`
		Strict           bool `env:"COMPARE_STRICT"            flag:"compare-strict"                                       desc:"require equal object key cardinality when a request does not set strict"`
		HistorySize      int  `env:"COMPARE_HISTORY_SIZE"      flag:"compare-history-size"      validate:"omitempty,min=1" desc:"number of recent comparison results kept for replay"`
	}
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Log         struct {
		Color    bool   `env:"LOG_COLOR"     flag:"log-color"`
		FilePath string `env:"LOG_FILE_PATH" flag:"log-file-path" validate:"omitempty"`
		IsProd   bool   `env:"LOG_IS_PROD"   flag:"log-is-prod"   desc:"affects the format of the log output"`
		JSON     bool   `env:"LOG_JSON"      flag:"log-json"`
		Level    string `env:"LOG_LEVEL"     flag:"log-level"     validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Web struct {
		Address   string `env:"WEB_ADDRESS"    flag:"web-address"    desc:"http server address host:port" validate:"required,hostname_port"`
		PublicUrl string `env:"WEB_PUBLIC_URL" flag:"web-public-url" desc:"public url of the oracle, falls back to web-address if empty" validate:"omitempty,url"`
	}
}

// SetDefaults fills the fields that may be omitted from env and flags.
func (cfg *Config) SetDefaults() {
	if cfg.Compare.DefaultPrecision == 0 {
		cfg.Compare.DefaultPrecision = 2
	}
	if cfg.Compare.HistorySize == 0 {
		cfg.Compare.HistorySize = 100
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Web.Address == "" {
		cfg.Web.Address = "0.0.0.0:8080"
	}
}

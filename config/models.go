package config

type AppConfig struct {
	Workdir     string `envconfig:"WORK_DIR"`
	Port        string `envconfig:"PORT" default:"1620"`
	DatabaseUri string `envconfig:"DATABASE_URI" default:"buyflow.db"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogToFile   bool   `envconfig:"LOG_TO_FILE" default:"true"`
	BaseUrl     string `envconfig:"BASE_URL"`

	LogDBQueries bool   `envconfig:"LOG_DB_QUERIES" default:"false"`
	FiatCurrency string `envconfig:"FIAT_CURRENCY" default:"USD"`

	// Poll tuning. Zero values keep the built-in defaults.
	PollIntervalSeconds int `envconfig:"POLL_INTERVAL_SECONDS"`
	KycPollRetries      int `envconfig:"KYC_POLL_RETRIES"`
	BankLinkPollRetries int `envconfig:"BANK_LINK_POLL_RETRIES"`
	OrderPollRetries    int `envconfig:"ORDER_POLL_RETRIES"`
}

type Config interface {
	Get(key string) (string, error)
	SetIgnore(key string, value string) error
	SetUpdate(key string, value string) error
	GetEnv() *AppConfig
	GetCurrency() string
	SetCurrency(value string) error
	GetPreferredPaymentMethodID() string
	SetPreferredPaymentMethodID(value string) error
	GetDefaultWorkDir() string
}

package config

const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvPhoneRegion = "PHONE_REGION"
	EnvCurrency    = "CURRENCY"
)

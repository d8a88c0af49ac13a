package config

const (
	// EnvPrefix is intentionally empty; every field carries its full
	// SHOPORI_* variable name in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "SHOPORI_APP_ENV"
	EnvPort   = "SHOPORI_APP_PORT"
	EnvDBPath = "SHOPORI_DB_PATH"
)

package config

// Config holds all application configuration. It is loaded once at
// startup, validated, and passed explicitly to the components that need
// it; nothing reads ambient global state after load.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel   string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Env        string `mapstructure:"env"         validate:"required,oneof=development staging production"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the authentication settings. Access and refresh
// tokens are signed with separate secrets.
type AuthConfig struct {
	AccessTokenSecret           string `mapstructure:"access_token_secret"            validate:"required,min=32"`
	RefreshTokenSecret          string `mapstructure:"refresh_token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=0,lte=31"`
}

package config

// AppConfig holds the application configuration
type AppConfig struct {
	BackendURL     string
	RedisAddress   string
	ListenAddress  string
	AllowedOrigins []string
}

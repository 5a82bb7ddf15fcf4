package utils

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	PayOS    PayOSConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type PayOSConfig struct {
	BaseURL   string
	ClientID  string
	APIKey    string
	ReturnURL string
	CancelURL string
	Timeout   time.Duration
}

type CheckoutConfig struct {
	PollInterval time.Duration
	PollCeiling  time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MONGO_DATABASE", "luluspa")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT_SECONDS", 5)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CART_TTL_HOURS", 168)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("PAYOS_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CHECKOUT_POLL_INTERVAL_SECONDS", 5)
	viper.SetDefault("CHECKOUT_POLL_CEILING_SECONDS", 120)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: strings.Split(viper.GetString("ALLOWED_ORIGINS"), ","),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DATABASE"),
			ConnectTimeout: time.Duration(viper.GetInt("MONGO_CONNECT_TIMEOUT_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CartTTL:  time.Duration(viper.GetInt("CART_TTL_HOURS")) * time.Hour,
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		PayOS: PayOSConfig{
			BaseURL:   viper.GetString("PAYOS_BASE_URL"),
			ClientID:  viper.GetString("PAYOS_CLIENT_ID"),
			APIKey:    viper.GetString("PAYOS_API_KEY"),
			ReturnURL: viper.GetString("PAYOS_RETURN_URL"),
			CancelURL: viper.GetString("PAYOS_CANCEL_URL"),
			Timeout:   time.Duration(viper.GetInt("PAYOS_TIMEOUT_SECONDS")) * time.Second,
		},
		Checkout: CheckoutConfig{
			PollInterval: time.Duration(viper.GetInt("CHECKOUT_POLL_INTERVAL_SECONDS")) * time.Second,
			PollCeiling:  time.Duration(viper.GetInt("CHECKOUT_POLL_CEILING_SECONDS")) * time.Second,
		},
	}

	return config, nil
}

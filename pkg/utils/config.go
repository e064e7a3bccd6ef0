package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// StoreConfig selects the repository backend. The default "memory" driver
// keeps all state in process; "postgres" backs the catalog, customers,
// bookings and payments with pgx.
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BookingConfig struct {
	HoldDuration time.Duration
}

type PaymentConfig struct {
	Delay       time.Duration
	FailureRate float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "safari-njema")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("HOLD_MINUTES", 10)
	viper.SetDefault("PAYMENT_DELAY_SECONDS", 2)
	viper.SetDefault("PAYMENT_FAILURE_RATE", 0.0)

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, defaults plus environment take over.
		if _, statErr := os.Stat(".env"); !os.IsNotExist(statErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			HoldDuration: time.Duration(viper.GetInt("HOLD_MINUTES")) * time.Minute,
		},
		Payment: PaymentConfig{
			Delay:       time.Duration(viper.GetInt("PAYMENT_DELAY_SECONDS")) * time.Second,
			FailureRate: viper.GetFloat64("PAYMENT_FAILURE_RATE"),
		},
	}

	return config, nil
}

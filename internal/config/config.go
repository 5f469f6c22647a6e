package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// Port the HTTP server listens on.
	Port uint16
	// DbUrl is the path to the database file.
	DbUrl string
	// QueueDbUrl is the path to the task queue database. Kept separate from
	// the main database so queue churn never contends with request queries.
	QueueDbUrl string
	// MigrationsFolder is where the SQL migration files live.
	MigrationsFolder string
	// SessionKey is the secret for the session cookie manager.
	SessionKey string
	// SessionLifetime is how long a login session marker stays valid.
	SessionLifetime time.Duration
	// BcryptCost tunes password hashing; raise it until verification takes
	// on the order of 100ms on production hardware.
	BcryptCost int
	// AdminEmail, when set, is promoted to an administrator account at
	// startup if it exists.
	AdminEmail string
	// Field-length caps of the signup form.
	UsernameMax int
	CountryMax  int
	AboutMax    int
	// Mail server settings for registration confirmations.
	SmtpAddr string
	SmtpFrom string
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
}

// ValidateServer checks the settings the HTTP server cannot run without.
// SessionKey has no default: an empty key would sign every session cookie
// with a guessable secret.
func (c Configuration) ValidateServer() error {
	if c.SessionKey == "" {
		return errors.New("session_key is not set")
	}
	return nil
}

// ReadConfig loads newsdesk.yaml from the working directory or /etc/newsdesk,
// with NEWSDESK_* environment variables taking precedence.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("newsdesk")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/newsdesk")
	v.SetEnvPrefix("newsdesk")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("db_url", "newsdesk.db")
	v.SetDefault("queue_db_url", "newsdesk-queue.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("session_lifetime", 4*time.Hour)
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("username_max", 32)
	v.SetDefault("country_max", 32)
	v.SetDefault("about_max", 256)
	v.SetDefault("smtp_addr", "localhost:25")
	v.SetDefault("smtp_from", "noreply@localhost")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Configuration{}, err
		}
	}

	return Configuration{
		Port:             uint16(v.GetUint32("port")),
		DbUrl:            v.GetString("db_url"),
		QueueDbUrl:       v.GetString("queue_db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		SessionKey:       v.GetString("session_key"),
		SessionLifetime:  v.GetDuration("session_lifetime"),
		BcryptCost:       v.GetInt("bcrypt_cost"),
		AdminEmail:       v.GetString("admin_email"),
		UsernameMax:      v.GetInt("username_max"),
		CountryMax:       v.GetInt("country_max"),
		AboutMax:         v.GetInt("about_max"),
		SmtpAddr:         v.GetString("smtp_addr"),
		SmtpFrom:         v.GetString("smtp_from"),
		Debug:            v.GetBool("debug"),
	}, nil
}

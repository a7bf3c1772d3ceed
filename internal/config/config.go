// Package config loads the backend configuration from the environment and
// an optional configuration file.
package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
)

type Config struct {
	APIURL           string        `mapstructure:"api_url"`
	LogFormat        string        `mapstructure:"log_format"`
	GinMode          string        `mapstructure:"gin_mode"`
	DBDriver         string        `mapstructure:"db_driver"`
	DBDSN            string        `mapstructure:"db_dsn"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
	EnablePprof      bool          `mapstructure:"enable_pprof"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisPassword    string        `mapstructure:"redis_password"`
	KafkaBrokers     []string      `mapstructure:"kafka_brokers"`
	KafkaTopic       string        `mapstructure:"kafka_topic"`
	EventsFilter     string        `mapstructure:"events_filter"`
	Currency         string        `mapstructure:"currency"`
	Locale           string        `mapstructure:"locale"`
}

var defaults = map[string]interface{}{
	"api_url":            "",
	"log_format":         "",
	"gin_mode":           "release",
	"db_driver":          "sqlite",
	"db_dsn":             "data/wishpay.db",
	"cors_allow_origins": []string{},
	"enable_pprof":       false,
	"jwt_secret":         "",
	"token_ttl":          24 * time.Hour,
	"redis_addr":         "",
	"redis_password":     "",
	"kafka_brokers":      []string{},
	"kafka_topic":        "wishpay.transactions",
	"events_filter":      "",
	"currency":           "USD",
	"locale":             "en",
}

// Load reads the configuration. Environment variables take precedence over
// the file named by WISHPAY_CONFIG.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path, ok := os.LookupEnv("WISHPAY_CONFIG"); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading configuration file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}

	// Space separated lists are accepted, too
	c.CORSAllowOrigins = fields(c.CORSAllowOrigins)
	c.KafkaBrokers = fields(c.KafkaBrokers)

	if c.APIURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	if _, err := c.URL(); err != nil {
		return Config{}, err
	}

	if c.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, err
		}

		c.JWTSecret = secret
		log.Warn().Msg("JWT_SECRET is not set, using a random secret. Tokens will not survive a restart")
	}

	return c, nil
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPIURLInvalid, err)
	}
	return u, nil
}

func fields(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' '
		})...)
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}

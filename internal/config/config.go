package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr         string
	JWTSecret    string
	JWTUser      string
	JWTPassword  string
	CacheTTL     time.Duration
	StreamPeriod time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

func Load() *Config {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("auth_user", "demo")
	v.SetDefault("auth_pass", "demo123")
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("stream_period", "30s")

	if path := os.Getenv("PRICING_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		// Fallback to conventional locations for local dev
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/safar-pricing") // container path
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("no config file found, using defaults + env vars: %v", err)
	}

	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		log.Fatalf("bad cache_ttl: %v", err)
	}
	period, err := time.ParseDuration(v.GetString("stream_period"))
	if err != nil {
		log.Fatalf("bad stream_period: %v", err)
	}

	return &Config{
		Addr:         v.GetString("addr"),
		JWTSecret:    v.GetString("jwt_secret"),
		JWTUser:      v.GetString("auth_user"),
		JWTPassword:  v.GetString("auth_pass"),
		CacheTTL:     ttl,
		StreamPeriod: period,
		TLSCertFile:  os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:   os.Getenv("TLS_KEY_FILE"),
	}
}

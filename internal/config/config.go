package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	CORS struct {
		// Fixed allow-list; only these origins may call the payment endpoints
		// from a browser. Requests without an Origin header (the gateway's
		// webhook delivery) bypass CORS entirely.
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Razorpay struct {
		// "test" or "live" - selects which key pair is read from the
		// environment. Secrets never live in this file.
		Mode     string `yaml:"mode"`
		Currency string `yaml:"currency"`
	} `yaml:"razorpay"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`
}

// RazorpayCredentials is the set of secrets injected through the environment:
// a key id/secret pair (test or live, per config mode) and the webhook secret.
// The key id is the one value intentionally exposed to browser clients.
type RazorpayCredentials struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")

	if dbURL == "" {
		log.Println("Loading config.yaml (non-test mode)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from ENVIRONMENT VARIABLES (test mode)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Razorpay.Mode == "" {
		cfg.Razorpay.Mode = "live"
	}
	if cfg.Razorpay.Currency == "" {
		cfg.Razorpay.Currency = "INR"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{
			"http://localhost:8080",
			"http://localhost:5173",
			"https://www.ruandricare.com",
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// RazorpaySecrets reads the gateway credentials from the environment.
// Returns an error instead of logging the missing name with its value,
// so secrets never end up in log output.
func (c *Config) RazorpaySecrets() (RazorpayCredentials, error) {
	prefix := "RAZORPAY_LIVE"
	if c.Razorpay.Mode == "test" {
		prefix = "RAZORPAY_TEST"
	}

	creds := RazorpayCredentials{
		KeyID:         os.Getenv(prefix + "_KEY_ID"),
		KeySecret:     os.Getenv(prefix + "_KEY_SECRET"),
		WebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
	}

	if creds.KeyID == "" || creds.KeySecret == "" {
		return creds, fmt.Errorf("razorpay credentials not set: %s_KEY_ID / %s_KEY_SECRET required", prefix, prefix)
	}
	if creds.WebhookSecret == "" {
		return creds, fmt.Errorf("razorpay credentials not set: RAZORPAY_WEBHOOK_SECRET required")
	}

	return creds, nil
}

package config

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultPort                = "8080"
	DefaultJWTExpiryMin        = 60
	DefaultLoginMaxAttempts    = 5
	DefaultLockoutMinutes      = 120
	DefaultResetTokenExpiryMin = 60
	DefaultSMTPPort            = 587
	DefaultUploadDir           = "uploads"
	DefaultMaxUploadMB         = 5
	DefaultContactRatePerMin   = 5
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	JWTSecret    string
	JWTExpiryMin int

	LoginMaxAttempts    int
	LockoutMinutes      int
	ResetTokenExpiryMin int

	MailSender   string // "smtp" or "log"
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	OwnerEmail   string
	ResetBaseURL string

	UploadDir   string
	MaxUploadMB int

	ContactRatePerMin int

	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	LogLevel  string
	LogFormat string
}

// fileEnv holds values read from the env file for the current Load.
// Real environment variables take precedence over it.
var fileEnv map[string]string

// Load reads config/.env.dev or config/.env.prod (depending on ENV) and
// builds the Config. Real environment variables take precedence over
// values from the file.
func Load() *Config {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	fileEnv = loadEnvFile(env)

	return &Config{
		Env:  env,
		Port: getEnv("PORT", DefaultPort),

		DBURL: mustGetEnv("DB_URL"),

		JWTSecret:    mustGetEnv("JWT_SECRET"),
		JWTExpiryMin: getEnvAsInt("JWT_EXPIRY", DefaultJWTExpiryMin),

		LoginMaxAttempts:    getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LockoutMinutes:      getEnvAsInt("LOCKOUT_MINUTES", DefaultLockoutMinutes),
		ResetTokenExpiryMin: getEnvAsInt("RESET_TOKEN_EXPIRY", DefaultResetTokenExpiryMin),

		MailSender:   getEnv("MAIL_SENDER", "log"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@localhost"),
		OwnerEmail:   getEnv("OWNER_EMAIL", ""),
		ResetBaseURL: getEnv("RESET_BASE_URL", ""),

		UploadDir:   getEnv("UPLOAD_DIR", DefaultUploadDir),
		MaxUploadMB: getEnvAsInt("MAX_UPLOAD_MB", DefaultMaxUploadMB),

		ContactRatePerMin: getEnvAsInt("CONTACT_RATE_PER_MIN", DefaultContactRatePerMin),

		BootstrapAdminEmail:    getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		BootstrapAdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),

		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", DefaultLogFormat),
	}
}

// loadEnvFile reads KEY=VALUE pairs from the env file for the given
// environment. The process environment is never mutated.
func loadEnvFile(env string) map[string]string {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}

	vals := make(map[string]string)

	f, err := os.Open(filepath.Join("config", name))
	if err != nil {
		return vals
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		vals[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return vals
}

// lookup resolves a key from the process environment first, then the
// loaded env file.
func lookup(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fileEnv[key]
}

func getEnv(key string, fallback string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	if value := lookup(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, fallback int) int {
	valStr := lookup(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return val
}

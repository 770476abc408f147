package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	TokenSecret       string
	TokenTTL          time.Duration
	AdminPassword     string
	AdminPasswordHash string
	ProofStorage      string
	UploadDir         string
	UploadURLPrefix   string
	GCSBucket         string
	MaxProofSize      int64
	StorageTimeout    time.Duration
	ShutdownTimeout   time.Duration
	PixKey            string
	PixRecipientName  string
	PixBank           string
	RedisURL          string
	LoginMaxAttempts  int
	LoginLockout      time.Duration
	LogLevel          string
	CORSOrigins       []string
	TrustedProxies    []string
}

const (
	ProofStorageLocal = "local"
	ProofStorageGCS   = "gcs"
)

// MinTokenSecretLength is the shortest accepted admin token signing secret.
const MinTokenSecretLength = 32

const (
	defaultRunAddress       = ":8080"
	defaultTokenTTL         = 7 * 24 * time.Hour
	defaultUploadDir        = "./uploads"
	defaultUploadURLPrefix  = "/uploads"
	defaultMaxProofSize     = 5 << 20
	defaultStorageTimeout   = 15 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultPixRecipientName = "NICOLAS CAMARGO MARQUES"
	defaultPixBank          = "Banco Inter"
	defaultLoginMaxAttempts = 5
	defaultLoginLockout     = 15 * time.Minute
	defaultLogLevel         = "info"
	defaultCORSOrigins      = "*"
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", ""),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		AdminPasswordHash: getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		ProofStorage:      getString(lookup, "PROOF_STORAGE", ProofStorageLocal),
		UploadDir:         getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		UploadURLPrefix:   getString(lookup, "UPLOAD_URL_PREFIX", defaultUploadURLPrefix),
		GCSBucket:         getString(lookup, "GCS_BUCKET", ""),
		MaxProofSize:      getInt64(lookup, "MAX_PROOF_SIZE", defaultMaxProofSize),
		StorageTimeout:    getDuration(lookup, "STORAGE_TIMEOUT", defaultStorageTimeout),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		PixKey:            getString(lookup, "PIX_KEY", ""),
		PixRecipientName:  getString(lookup, "PIX_RECIPIENT_NAME", defaultPixRecipientName),
		PixBank:           getString(lookup, "PIX_BANK", defaultPixBank),
		RedisURL:          getString(lookup, "REDIS_URL", ""),
		LoginMaxAttempts:  getInt(lookup, "LOGIN_MAX_ATTEMPTS", defaultLoginMaxAttempts),
		LoginLockout:      getDuration(lookup, "LOGIN_LOCKOUT", defaultLoginLockout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}
	corsOrigins := getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)
	trustedProxies := getString(lookup, "TRUSTED_PROXIES", "")

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		storageTimeoutStr  = cfg.StorageTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		loginLockoutStr    = cfg.LoginLockout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing admin tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Admin token lifetime")
	fs.StringVar(&cfg.ProofStorage, "proof-storage", cfg.ProofStorage, "Payment proof backend: local or gcs")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for locally stored proofs")
	fs.StringVar(&cfg.GCSBucket, "gcs-bucket", cfg.GCSBucket, "Bucket for proofs when using gcs storage")
	fs.Int64Var(&cfg.MaxProofSize, "max-proof-size", cfg.MaxProofSize, "Maximum payment proof size in bytes")
	fs.StringVar(&storageTimeoutStr, "storage-timeout", storageTimeoutStr, "Timeout for proof storage writes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for login attempt tracking")
	fs.IntVar(&cfg.LoginMaxAttempts, "login-max-attempts", cfg.LoginMaxAttempts, "Failed admin logins before lockout")
	fs.StringVar(&loginLockoutStr, "login-lockout", loginLockoutStr, "Admin login lockout window")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&trustedProxies, "trusted-proxies", trustedProxies, "Comma separated proxy addresses or CIDRs allowed to set X-Forwarded-For")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.StorageTimeout, err = time.ParseDuration(storageTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid storage timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.LoginLockout, err = time.ParseDuration(loginLockoutStr); err != nil {
		return nil, fmt.Errorf("invalid login lockout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSOrigins = splitList(corsOrigins)
	cfg.TrustedProxies = splitList(trustedProxies)

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.MaxProofSize <= 0 {
		cfg.MaxProofSize = defaultMaxProofSize
	}

	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = defaultStorageTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.LoginMaxAttempts <= 0 {
		cfg.LoginMaxAttempts = defaultLoginMaxAttempts
	}

	if cfg.LoginLockout <= 0 {
		cfg.LoginLockout = defaultLoginLockout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token secret must be provided")
	}

	if len(cfg.TokenSecret) < MinTokenSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d bytes", MinTokenSecretLength)
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin password or password hash must be provided")
	}

	switch cfg.ProofStorage {
	case ProofStorageLocal:
	case ProofStorageGCS:
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("gcs bucket must be provided for gcs proof storage")
		}
	default:
		return nil, fmt.Errorf("unknown proof storage %q", cfg.ProofStorage)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

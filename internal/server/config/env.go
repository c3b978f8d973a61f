package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or empty
// variables leave the current value untouched.
//
// Supported variables:
//
//	ADDRESS                           HTTP bind address (e.g. ":8000")
//	DATABASE_DSN                      PostgreSQL DSN
//	JWT_SECRET_KEY                    HMAC secret for signing tokens
//	JWT_ACCESS_TOKEN_EXPIRE_MINUTES   access token validity, minutes
//	CORS_ORIGINS                      comma-separated list of allowed origins
//	S3_ROOT_USER / S3_ROOT_PASSWORD   object storage credentials
//	S3_BUCKET / S3_REGION / S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv("S3_ROOT_USER"); v != "" {
		config.S3RootUser = v
	}
	if v := os.Getenv("S3_ROOT_PASSWORD"); v != "" {
		config.S3RootPassword = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		config.S3Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		config.S3Region = v
	}
	if v := os.Getenv("S3_BASE_ENDPOINT"); v != "" {
		config.S3BaseEndpoint = v
	}
}

func splitOrigins(v string) []string {
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres|memory
	DBDSN    string

	BlobBasePath string // media blob root

	CORSOrigins []string

	// SessionCountMax caps the requested question count before the
	// builder's bank-size clamp, to keep pathological form input out.
	SessionCountMax int

	// OpenBrowser pops the default browser at the bound address on
	// start, like the original standalone runner.
	OpenBrowser bool
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	return Config{
		HTTPAddr:        addr,
		DBDriver:        envOr("DB_DRIVER", "sqlite"),
		DBDSN:           envOr("DB_DSN", ""),
		BlobBasePath:    envOr("BLOB_BASE_PATH", "./data"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
		SessionCountMax: envInt("SESSION_COUNT_MAX", 500),
		OpenBrowser:     envBool("OPEN_BROWSER", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

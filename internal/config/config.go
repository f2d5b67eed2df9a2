package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	AppPort       string
	DataFile      string
	SessionFile   string
	JWTSecret     string
	JWTExpiresMin int
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080"))
	dataDir := get("DATA_DIR", ".")
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DataFile:      get("DATA_FILE", filepath.Join(dataDir, "linkwork_data.json")),
		SessionFile:   get("SESSION_FILE", filepath.Join(dataDir, "linkwork_session_user.json")),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}

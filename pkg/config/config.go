package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Upload UploadConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// UploadConfig reglas para la subida de imágenes del menú e ingredientes.
type UploadConfig struct {
	PublicPath   string   // prefijo de la URL pública de las imágenes
	MaxBytes     int64    // tamaño máximo por archivo
	AllowedTypes []string // content types aceptados, separados por coma en UPLOAD_ALLOWED_TYPES
}

const defaultMaxUploadBytes = 2 * 1024 * 1024

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, UPLOAD_MAX_BYTES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "restaurante-pos"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Upload: UploadConfig{
			PublicPath:   strings.TrimRight(getString(v, "UPLOAD_PUBLIC_PATH", "/static/images"), "/"),
			MaxBytes:     getInt64(v, "UPLOAD_MAX_BYTES", defaultMaxUploadBytes),
			AllowedTypes: getList(v, "UPLOAD_ALLOWED_TYPES", []string{"image/jpeg", "image/png", "image/webp", "image/jpg"}),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, s := range strings.Split(v.GetString(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

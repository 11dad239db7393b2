package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "restaurante-pos", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/static/images", cfg.Upload.PublicPath)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/webp", "image/jpg"}, cfg.Upload.AllowedTypes)
}

func TestFromViper_Sobrescritos(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("LOG_LEVEL", "debug")
	v.Set("UPLOAD_PUBLIC_PATH", "/media/")
	v.Set("UPLOAD_MAX_BYTES", "1048576")
	v.Set("UPLOAD_ALLOWED_TYPES", "image/png, image/webp ,")

	cfg := fromViper(v)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/media", cfg.Upload.PublicPath)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, []string{"image/png", "image/webp"}, cfg.Upload.AllowedTypes)
}

func TestFromViper_MaxBytesInvalidoUsaDefecto(t *testing.T) {
	v := viper.New()
	v.Set("UPLOAD_MAX_BYTES", "dos megas")

	assert.Equal(t, int64(defaultMaxUploadBytes), fromViper(v).Upload.MaxBytes)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_NAME", "pos-test")
	t.Setenv("UPLOAD_MAX_BYTES", "512")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "pos-test", cfg.App.Name)
	assert.Equal(t, int64(512), cfg.Upload.MaxBytes)
}

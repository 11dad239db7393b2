package upload

import (
	"encoding/hex"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// Config reglas de subida de imágenes.
type Config struct {
	PublicPath   string   // prefijo de la URL pública, ej. /static/images
	MaxBytes     int64    // tamaño máximo aceptado
	AllowedTypes []string // content types aceptados
}

// DefaultConfig 2 MB y los formatos que acepta el frontend.
func DefaultConfig() Config {
	return Config{
		PublicPath:   "/static/images",
		MaxBytes:     2 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/jpg"},
	}
}

// Policy decide si una imagen se acepta y con qué nombre se almacena.
// No escribe el archivo: eso lo hace quien la invoca con Filename.
type Policy struct {
	cfg      Config
	v        *validation.Validator
	newToken func() string
}

// NewPolicy construye la política.
func NewPolicy(cfg Config, v *validation.Validator) *Policy {
	if cfg.PublicPath == "" {
		cfg.PublicPath = DefaultConfig().PublicPath
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultConfig().MaxBytes
	}
	if len(cfg.AllowedTypes) == 0 {
		cfg.AllowedTypes = DefaultConfig().AllowedTypes
	}
	return &Policy{cfg: cfg, v: v, newToken: randomToken}
}

func randomToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Accept valida tipo y tamaño, genera el nombre almacenado (uuid hex + extensión original)
// y devuelve la respuesta ya validada (incluida la regla image_url).
func (p *Policy) Accept(originalName, contentType string, size int64) (*dto.ImageUploadResponse, error) {
	if !p.allowed(contentType) {
		return nil, fmt.Errorf("%w: tipo %q no permitido (permitidos: %s)", domain.ErrInvalidImage, contentType, p.allowedList())
	}
	if size > p.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes, máximo %d", domain.ErrPayloadTooLarge, size, p.cfg.MaxBytes)
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := p.newToken() + ext
	ct := contentType
	out := &dto.ImageUploadResponse{
		URL:         path.Join(p.cfg.PublicPath, filename),
		Filename:    filename,
		Size:        size,
		ContentType: &ct,
	}
	if err := p.v.Struct(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Policy) allowed(contentType string) bool {
	for _, t := range p.cfg.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func (p *Policy) allowedList() string {
	short := make([]string, 0, len(p.cfg.AllowedTypes))
	for _, t := range p.cfg.AllowedTypes {
		_, sub, _ := strings.Cut(t, "/")
		short = append(short, sub)
	}
	return strings.Join(short, ", ")
}

package upload

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
)

func newTestPolicy() *Policy {
	p := NewPolicy(DefaultConfig(), validation.New())
	p.newToken = func() string { return "0123456789abcdef0123456789abcdef" }
	return p
}

func TestAccept_ImagenValida(t *testing.T) {
	out, err := newTestPolicy().Accept("latte.png", "image/png", 1024)

	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef0123456789abcdef.png", out.Filename)
	assert.Equal(t, "/static/images/0123456789abcdef0123456789abcdef.png", out.URL)
	assert.Equal(t, int64(1024), out.Size)
	require.NotNil(t, out.ContentType)
	assert.Equal(t, "image/png", *out.ContentType)
}

func TestAccept_SinExtensionUsaJPG(t *testing.T) {
	out, err := newTestPolicy().Accept("foto", "image/jpeg", 10)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.Filename, ".jpg"))
}

func TestAccept_TipoNoPermitido(t *testing.T) {
	_, err := newTestPolicy().Accept("doc.pdf", "application/pdf", 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidImage))
	assert.Contains(t, err.Error(), "jpeg, png, webp, jpg")
}

func TestAccept_ArchivoMuyGrande(t *testing.T) {
	_, err := newTestPolicy().Accept("big.jpg", "image/jpeg", 2*1024*1024+1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPayloadTooLarge))
}

func TestAccept_LimiteExactoSeAcepta(t *testing.T) {
	_, err := newTestPolicy().Accept("big.jpg", "image/jpeg", 2*1024*1024)
	assert.NoError(t, err)
}

func TestAccept_ExtensionNoImagenAunqueElTipoSea(t *testing.T) {
	_, err := newTestPolicy().Accept("img.exe", "image/png", 10)

	require.Error(t, err)
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	fe, ok := verr.For("url")
	require.True(t, ok)
	assert.Equal(t, validation.MsgInvalidImageFormat, fe.Message)
}

func TestNewPolicy_ConfigParcialUsaDefaults(t *testing.T) {
	p := NewPolicy(Config{PublicPath: "/media"}, validation.New())

	assert.Equal(t, "/media", p.cfg.PublicPath)
	assert.Equal(t, int64(2*1024*1024), p.cfg.MaxBytes)
	assert.Len(t, p.cfg.AllowedTypes, 4)
}

func TestRandomToken(t *testing.T) {
	a, b := randomToken(), randomToken()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

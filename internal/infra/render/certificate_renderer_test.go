package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diploma/config"
	"diploma/internal/domain/service"
	"diploma/internal/infra/qrcode"
)

func newTestRenderer(t *testing.T) service.CertificateRenderer {
	t.Helper()

	cfg := &config.Config{
		Renderer: &config.RendererConfig{Width: 800, Height: 560},
	}

	r, err := NewPNGRenderer(cfg, qrcode.NewQRCodeService(cfg))
	require.NoError(t, err)

	return r
}

func testDocumentData() *service.CertificateDocumentData {
	return &service.CertificateDocumentData{
		IssuerName:       "Example Academy",
		RecipientName:    "Taylor Kim",
		CourseTitle:      "Distributed Systems",
		IssuedAt:         time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		VerificationCode: "k7fP2xGq9ZtRwX3lN0bYmA8dVcE",
		VerifyURL:        "https://learn.example.com/verify/k7fP2xGq9ZtRwX3lN0bYmA8dVcE",
		CompletedLessons: 12,
		TotalLessons:     12,
	}
}

func TestRender_ProducesPNG(t *testing.T) {
	r := newTestRenderer(t)

	data, err := r.Render(testDocumentData())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 560, img.Bounds().Dy())
}

func TestRender_OptionalDescription(t *testing.T) {
	r := newTestRenderer(t)

	withDesc := testDocumentData()
	withDesc.CourseDescription = "An in-depth treatment of replication, consensus and fault tolerance in large scale systems."

	data, err := r.Render(withDesc)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRender_Deterministic(t *testing.T) {
	r := newTestRenderer(t)
	input := testDocumentData()

	first, err := r.Render(input)
	require.NoError(t, err)
	second, err := r.Render(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContentTypeAndExtension(t *testing.T) {
	r := newTestRenderer(t)

	assert.Equal(t, "image/png", r.ContentType())
	assert.Equal(t, "png", r.FileExtension())
}

func TestNewPNGRenderer_BadFontPath(t *testing.T) {
	cfg := &config.Config{
		Renderer: &config.RendererConfig{FontPath: "/nonexistent/font.ttf"},
	}

	_, err := NewPNGRenderer(cfg, qrcode.NewQRCodeService(cfg))
	assert.Error(t, err)
}

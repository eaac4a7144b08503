// Package render draws certificate documents as PNG images.
package render

import (
	"bytes"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"diploma/config"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
)

const (
	defaultWidth  = 1600
	defaultHeight = 1120

	qrSize = 180
)

// pngRenderer draws a landscape certificate page and encodes it as PNG.
// Fonts are loaded once at construction. When no font paths are configured
// the renderer falls back to its built-in face, which keeps tests hermetic.
type pngRenderer struct {
	width  int
	height int

	regular *truetype.Font
	bold    *truetype.Font

	qr service.QRCodeService
}

// NewPNGRenderer is the constructor for pngRenderer.
func NewPNGRenderer(cfg *config.Config, qr service.QRCodeService) (service.CertificateRenderer, error) {
	r := &pngRenderer{
		width:  defaultWidth,
		height: defaultHeight,
		qr:     qr,
	}

	if cfg.Renderer != nil {
		if cfg.Renderer.Width > 0 {
			r.width = cfg.Renderer.Width
		}
		if cfg.Renderer.Height > 0 {
			r.height = cfg.Renderer.Height
		}

		var err error
		if r.regular, err = loadFont(cfg.Renderer.FontPath); err != nil {
			return nil, errors.Wrap(err, "load regular font")
		}
		if r.bold, err = loadFont(cfg.Renderer.BoldFontPath); err != nil {
			return nil, errors.Wrap(err, "load bold font")
		}
	}

	return r, nil
}

func (r *pngRenderer) ContentType() string {
	return "image/png"
}

func (r *pngRenderer) FileExtension() string {
	return "png"
}

// Render draws the certificate page for the given data and returns PNG bytes.
// Rendering never mutates stored certificate state; a failure here is
// reported to the caller and the certificate record stays untouched.
func (r *pngRenderer) Render(data *service.CertificateDocumentData) ([]byte, error) {
	w, h := float64(r.width), float64(r.height)
	dc := gg.NewContext(r.width, r.height)

	// Page background and border.
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(color.NRGBA{R: 0x1F, G: 0x3A, B: 0x5F, A: 0xFF})
	dc.SetLineWidth(6)
	dc.DrawRectangle(40, 40, w-80, h-80)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(56, 56, w-112, h-112)
	dc.Stroke()

	cx := w / 2
	y := h * 0.16

	dc.SetColor(color.NRGBA{R: 0x1F, G: 0x3A, B: 0x5F, A: 0xFF})
	dc.SetFontFace(r.face(r.bold, 64))
	y = drawCentered(dc, "Certificate of Completion", cx, y, 76)

	dc.SetColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF})
	dc.SetFontFace(r.face(r.regular, 28))
	y = drawCentered(dc, data.IssuerName, cx, y, 44)

	y += h * 0.04
	dc.SetFontFace(r.face(r.regular, 26))
	y = drawCentered(dc, "This certifies that", cx, y, 40)

	dc.SetColor(color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF})
	dc.SetFontFace(r.face(r.bold, 52))
	y = drawCentered(dc, data.RecipientName, cx, y, 70)

	dc.SetColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF})
	dc.SetFontFace(r.face(r.regular, 26))
	y = drawCentered(dc, "has successfully completed the course", cx, y, 44)

	dc.SetColor(color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF})
	dc.SetFontFace(r.face(r.bold, 40))
	y = drawCentered(dc, data.CourseTitle, cx, y, 58)

	// Course description is optional; courses without one keep a tighter layout.
	if desc := strings.TrimSpace(data.CourseDescription); desc != "" {
		dc.SetColor(color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF})
		dc.SetFontFace(r.face(r.regular, 22))
		for _, line := range dc.WordWrap(desc, w*0.6) {
			y = drawCentered(dc, line, cx, y, 32)
		}
	}

	y += h * 0.03
	dc.SetColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF})
	dc.SetFontFace(r.face(r.regular, 24))
	drawCentered(dc, "Issued on "+data.IssuedAt.Format("January 2, 2006"), cx, y, 36)

	// Unlabeled signature placeholders above the footer.
	sigY := h - 240
	dc.SetColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF})
	dc.SetLineWidth(1.5)
	dc.DrawLine(w*0.16, sigY, w*0.38, sigY)
	dc.DrawLine(w*0.62, sigY, w*0.84, sigY)
	dc.Stroke()

	// Verification footer: code, URL and QR code in the bottom band.
	footerY := h - 150
	dc.SetColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF})
	dc.SetFontFace(r.face(r.regular, 20))
	dc.DrawStringAnchored("Verification code: "+data.VerificationCode, 96, footerY, 0, 0.5)
	dc.DrawStringAnchored("Verify at "+data.VerifyURL, 96, footerY+32, 0, 0.5)

	qrImg, err := r.qr.VerificationQRImage(data.VerifyURL, qrSize)
	if err != nil {
		return nil, errors.Wrap(err, "render verification qr")
	}
	dc.DrawImage(qrImg, r.width-96-qrSize, r.height-96-qrSize)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode certificate png")
	}

	return buf.Bytes(), nil
}

// face builds a drawing face at the given size, falling back to the
// built-in face when no font was configured.
func (r *pngRenderer) face(f *truetype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func loadFont(path string) (*truetype.Font, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read font file")
	}

	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse ttf")
	}

	return parsed, nil
}

// drawCentered draws a line centered on cx at baseline y and returns the
// next baseline.
func drawCentered(dc *gg.Context, s string, cx, y, advance float64) float64 {
	dc.DrawStringAnchored(s, cx, y, 0.5, 0.5)
	return y + advance
}

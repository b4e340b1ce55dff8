package qr

import (
	"fmt"
	"image/color"
	"strconv"

	"qrlink/internal/model"

	"github.com/skip2/go-qrcode"
)

// Encoder renders a text payload into an opaque QR image
type Encoder interface {
	Encode(text string, c model.Customization) ([]byte, error)
}

// PNGEncoder renders QR codes as PNG images
type PNGEncoder struct{}

// NewPNGEncoder creates a new PNGEncoder
func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{}
}

// Encode renders text as a PNG QR code using the given customization.
// The customization is assumed validated; malformed colors fall back to
// black on white rather than failing the render.
func (e *PNGEncoder) Encode(text string, c model.Customization) ([]byte, error) {
	q, err := qrcode.New(text, recoveryLevel(c.ErrorCorrection))
	if err != nil {
		return nil, fmt.Errorf("failed to build qr code: %w", err)
	}

	q.ForegroundColor = parseHexColor(c.ForegroundColor, color.Black)
	q.BackgroundColor = parseHexColor(c.BackgroundColor, color.White)

	png, err := q.PNG(c.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr png: %w", err)
	}

	return png, nil
}

// recoveryLevel maps the stored error correction level to the encoder's
func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case model.ECLow:
		return qrcode.Low
	case model.ECQuality:
		return qrcode.High
	case model.ECHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// parseHexColor parses a 6-hex-digit color string
func parseHexColor(s string, fallback color.Color) color.Color {
	if len(s) != 6 {
		return fallback
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}

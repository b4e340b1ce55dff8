package model

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// MinQRSize is the smallest renderable QR pixel size
	MinQRSize = 128
	// MaxQRSize is the largest renderable QR pixel size
	MaxQRSize = 1024
	// DefaultQRSize is used when no size is requested
	DefaultQRSize = 256

	// DefaultForegroundColor is black
	DefaultForegroundColor = "000000"
	// DefaultBackgroundColor is white
	DefaultBackgroundColor = "FFFFFF"
)

// Error correction levels, lowest to highest redundancy
const (
	ECLow     = "L"
	ECMedium  = "M"
	ECQuality = "Q"
	ECHigh    = "H"
)

var (
	// ErrInvalidSize is returned when the QR size is out of range
	ErrInvalidSize = errors.New("qr size must be between 128 and 1024")
	// ErrInvalidErrorCorrection is returned for an unknown error correction level
	ErrInvalidErrorCorrection = errors.New("error correction level must be one of L, M, Q, H")
	// ErrInvalidColor is returned for a malformed color string
	ErrInvalidColor = errors.New("color must be a 6-hex-digit string")
)

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Customization holds the QR rendering options of a link
type Customization struct {
	Size            int    `json:"size" gorm:"default:256"`
	ErrorCorrection string `json:"error_correction" gorm:"type:varchar(1);default:'M'"`
	ForegroundColor string `json:"foreground_color" gorm:"type:varchar(6);default:'000000'"`
	BackgroundColor string `json:"background_color" gorm:"type:varchar(6);default:'FFFFFF'"`
}

// DefaultCustomization returns the customization applied to links whose
// plan does not allow custom QR rendering
func DefaultCustomization() Customization {
	return Customization{
		Size:            DefaultQRSize,
		ErrorCorrection: ECMedium,
		ForegroundColor: DefaultForegroundColor,
		BackgroundColor: DefaultBackgroundColor,
	}
}

// CustomizationFromRequest builds a validated Customization from the raw
// request fields, applying defaults for anything left unset
func CustomizationFromRequest(req *CreateLinkRequest) (Customization, error) {
	c := DefaultCustomization()

	if req.Size != 0 {
		if req.Size < MinQRSize || req.Size > MaxQRSize {
			return Customization{}, ErrInvalidSize
		}
		c.Size = req.Size
	}

	if req.ErrorCorrection != "" {
		level := strings.ToUpper(req.ErrorCorrection)
		switch level {
		case ECLow, ECMedium, ECQuality, ECHigh:
			c.ErrorCorrection = level
		default:
			return Customization{}, ErrInvalidErrorCorrection
		}
	}

	fg, err := normalizeColor(req.ForegroundColor, DefaultForegroundColor)
	if err != nil {
		return Customization{}, err
	}
	c.ForegroundColor = fg

	bg, err := normalizeColor(req.BackgroundColor, DefaultBackgroundColor)
	if err != nil {
		return Customization{}, err
	}
	c.BackgroundColor = bg

	return c, nil
}

// IsCustom reports whether the request carries any non-default rendering option
func (req *CreateLinkRequest) IsCustom() bool {
	return req.Size != 0 || req.ErrorCorrection != "" ||
		req.ForegroundColor != "" || req.BackgroundColor != ""
}

// normalizeColor strips an optional leading '#' and validates the hex form
func normalizeColor(raw, fallback string) (string, error) {
	if raw == "" {
		return fallback, nil
	}
	s := strings.TrimPrefix(raw, "#")
	if !hexColorPattern.MatchString(s) {
		return "", ErrInvalidColor
	}
	return strings.ToUpper(s), nil
}

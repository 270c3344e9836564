package transcoder

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

const (
	FormatWebP = "webp"
	FormatJPEG = "jpeg"
)

// Encoder writes the normalized rendition format.
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
	Ext() string
	ContentType() string
}

func NewEncoder(format string) (Encoder, error) {
	switch format {
	case FormatWebP, "":
		return WebPEncoder{}, nil
	case FormatJPEG, "jpg":
		return JPEGEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported rendition format %q", format)
	}
}

type WebPEncoder struct{}

func (WebPEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
	if err != nil {
		return fmt.Errorf("webp encoder options: %w", err)
	}

	return webp.Encode(w, img, options)
}

func (WebPEncoder) Ext() string { return "webp" }

func (WebPEncoder) ContentType() string { return "image/webp" }

type JPEGEncoder struct{}

func (JPEGEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}

func (JPEGEncoder) Ext() string { return "jpg" }

func (JPEGEncoder) ContentType() string { return "image/jpeg" }

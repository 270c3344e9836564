// Package transcoder turns an uploaded raster image into a rendition: it
// decodes any supported input, fits it inside the size box without
// enlarging, and re-encodes it in the configured lossy format.
package transcoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/sizes"
)

var errNoDimensions = errors.New("image has no decodable dimensions")

type Transcoder struct {
	enc Encoder
}

func New(enc Encoder) *Transcoder {
	return &Transcoder{enc: enc}
}

func (t *Transcoder) Ext() string {
	return t.enc.Ext()
}

func (t *Transcoder) ContentType() string {
	return t.enc.ContentType()
}

// Decode fails with an apperr.ErrInvalidImage error when src is not a
// readable image.
func (t *Transcoder) Decode(src []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperr.InvalidImage(err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, apperr.InvalidImage(errNoDimensions)
	}

	return img, nil
}

// Encode renders img at spec.
func (t *Transcoder) Encode(img image.Image, spec sizes.Spec) ([]byte, error) {
	const op = "transcoder.Encode"

	b := img.Bounds()
	w, h := FitDimensions(b.Dx(), b.Dy(), spec.Width, spec.Height)

	var fitted image.Image
	if w == b.Dx() && h == b.Dy() {
		fitted = img
	} else {
		fitted = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := t.enc.Encode(&buf, fitted, spec.Quality); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, spec.Name, err)
	}

	return buf.Bytes(), nil
}

func (t *Transcoder) Transcode(src []byte, spec sizes.Spec) ([]byte, error) {
	img, err := t.Decode(src)
	if err != nil {
		return nil, err
	}

	return t.Encode(img, spec)
}

// FitDimensions scales srcW x srcH down to fit inside maxW x maxH, keeping the
// aspect ratio. Sources that already fit are returned unchanged.
func FitDimensions(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}

	var w, h int
	if srcW*maxH > srcH*maxW {
		w = maxW
		h = maxW * srcH / srcW
	} else {
		h = maxH
		w = maxH * srcW / srcH
	}

	return max(w, 1), max(h, 1)
}

package imagepkg

import (
	"bytes"
	"errors"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/uid0/openmakersuite/internal/cards"
)

// PhotoLoader resolves an item's image reference (local path or URL) into a
// decoded photo. Failures are reported to the caller, which degrades by
// skipping the photo zone.
type PhotoLoader struct {
	Client http.Client
}

func NewPhotoLoader() *PhotoLoader {
	return &PhotoLoader{Client: http.Client{Timeout: 10 * time.Second}}
}

// Load decodes the referenced image and re-encodes it as PNG with its
// intrinsic dimensions preserved.
func (l *PhotoLoader) Load(ref string) (*cards.Photo, error) {
	if ref == "" {
		return nil, errors.New("empty image reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.fetch(ref)
	}
	img, err := imaging.Open(ref)
	if err != nil {
		return nil, err
	}
	return photoFromImage(img)
}

func (l *PhotoLoader) fetch(url string) (*cards.Photo, error) {
	resp, err := l.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("non-200 response")
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return photoFromImage(img)
}

func photoFromImage(img image.Image) (*cards.Photo, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &cards.Photo{
		PNG:    buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

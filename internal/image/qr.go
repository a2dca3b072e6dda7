package imagepkg

import (
	"bytes"
	"fmt"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRProvider generates scannable code rasters for reorder URLs.
type QRProvider struct {
	Level qrcode.RecoveryLevel
	Size  int
}

// NewQRProvider uses medium error correction at 256px, enough headroom for
// the sub-inch code zone on printed cards.
func NewQRProvider() *QRProvider {
	return &QRProvider{Level: qrcode.Medium, Size: 256}
}

// Generate returns PNG bytes of a QR code for the given payload.
func (p *QRProvider) Generate(payload string) ([]byte, error) {
	pngBytes, err := qrcode.Encode(payload, p.Level, p.Size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr payload: %w", err)
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, fmt.Errorf("validating qr png: %w", err)
	}
	return pngBytes, nil
}

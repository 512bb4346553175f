package tracking

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const defaultLabelSize = 256

// Label renders the package code as a square QR PNG sized for label
// printers. Scanning happens on phones outside this system; only the
// generation lives here.
func Label(code string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultLabelSize
	}

	qrCode, err := qr.Encode(code, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(qrCode, size, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package imaging renders the images the service uploads: event join QR
// codes and placeholder recap cards.
package imaging

import (
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

// RenderQR renders content as a QR code PNG.
func RenderQR(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, qrImageSize)
}

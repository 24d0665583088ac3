package imaging

import (
	"bytes"

	"github.com/fogleman/gg"
)

const (
	recapWidth  = 800
	recapHeight = 1200
)

// RenderRecapCard renders the placeholder recap card: a slate background
// with a static title. No per-user content yet.
func RenderRecapCard(title string) ([]byte, error) {
	dc := gg.NewContext(recapWidth, recapHeight)
	dc.SetRGB255(15, 23, 42)
	dc.Clear()

	dc.SetRGB255(255, 255, 255)
	dc.DrawString(title, 40, 82)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package preprocess

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/sketchboard/ai-backend/internal/models"
)

const pdfPrefix = "data:application/pdf;base64,"

// NormalizeImage returns a raster data URI suitable for the vision model.
// Raster uploads pass through untouched; a PDF upload is rendered to a PNG
// of its first page. Rendering failures are the caller's fault.
func NormalizeImage(dataURI string) (string, error) {
	if !strings.HasPrefix(dataURI, pdfPrefix) {
		return dataURI, nil
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, pdfPrefix))
	if err != nil {
		return "", models.InvalidInput("PDF upload is not valid base64")
	}

	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return "", models.InvalidInput("failed to open PDF upload")
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return "", models.InvalidInput("PDF upload has no pages")
	}

	img, err := doc.Image(0)
	if err != nil {
		return "", models.InvalidInput("failed to render PDF page")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", models.InvalidInput("failed to encode PDF page")
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

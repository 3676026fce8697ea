package invoice

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const fontFamily = "Go"

// FPDFEngine renders in-process with go-pdf/fpdf using the embedded Go fonts,
// so item names are written as UTF-8. The first line of the text becomes the
// heading.
type FPDFEngine struct{}

func (FPDFEngine) Render(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	heading, body, _ := strings.Cut(text, "\n")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(heading, true)
	pdf.SetCreator("canteen", false)
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, heading, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, 7, strings.TrimLeft(body, "\n"), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"vitrine/internal/model"
)

// ListingPDF renders a one-page sheet for a listing: headline, key facts,
// contact and the public URL.
func ListingPDF(p *model.Property, publicURL string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(p.PropertyType+" - "+p.City, true)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, tr(fmt.Sprintf("%s - %s (%s)", p.PropertyType, p.City, p.Country)), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.Ln(4)

	facts := [][2]string{
		{"Prix", strconv.FormatFloat(p.Price, 'f', 0, 64) + " EUR"},
		{"Surface", strconv.Itoa(p.Surface) + " m2"},
		{"Pieces", strconv.Itoa(p.Rooms)},
		{"DPE", p.DPE},
		{"Code postal", p.PostalCode},
	}
	for _, f := range facts {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(40, 8, tr(f[0]), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 8, tr(f[1]), "", 1, "L", false, 0, "")
	}

	if p.Description != "" {
		doc.Ln(4)
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, tr(p.Description), "", "L", false)
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Contact", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, tr(p.FirstName+" "+p.LastName), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, tr(p.Phone), "", 1, "L", false, 0, "")

	if publicURL != "" {
		doc.Ln(4)
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 6, publicURL, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/model"
)

func TestQRPNG(t *testing.T) {
	data, err := QRPNG("https://www.example.com/pages/appartement-marseille-13001.html")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestListingPDF(t *testing.T) {
	p := &model.Property{
		PropertyType: "Appartement",
		City:         "Marseille",
		Country:      "France",
		PostalCode:   "13001",
		Price:        250000,
		Surface:      80,
		Rooms:        4,
		DPE:          "C",
		Description:  "Bel appartement lumineux.",
		FirstName:    "Jean",
		LastName:     "Martin",
		Phone:        "+33 6 12 34 56 78",
	}

	data, err := ListingPDF(p, "https://www.example.com/pages/a.html")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(data), 500)
}

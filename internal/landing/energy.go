package landing

import (
	"strings"

	"vitrine/internal/model"
)

// Band is one row of the seven-grade energy chart.
type Band struct {
	Grade   string
	Color   string
	Width   int
	Active  bool
	Pending bool
}

// Official DPE scale colors, A (best) to G (worst).
var bandColors = map[string]string{
	"A": "#319834",
	"B": "#33cc31",
	"C": "#cbfc34",
	"D": "#fbfe06",
	"E": "#fbcc05",
	"F": "#fc9935",
	"G": "#fc0205",
}

// EnergyBands builds the seven chart bands for a grade. For the pending
// sentinel every band renders in the pending state and none is active.
func EnergyBands(grade string) []Band {
	pending := strings.EqualFold(grade, model.DPEPending)

	bands := make([]Band, 0, len(model.DPEGrades))
	for i, g := range model.DPEGrades {
		bands = append(bands, Band{
			Grade:   g,
			Color:   bandColors[g],
			Width:   40 + i*10,
			Active:  !pending && strings.EqualFold(grade, g),
			Pending: pending,
		})
	}
	return bands
}

// Package units rewrites measurement units into the set the aggregation
// pipeline stores: gas mixing ratios in ppm and mass concentrations in µg/m³.
package units

import (
	"context"
	"strings"

	"github.com/couchcryptid/stateair-etl/internal/domain"
)

const (
	PPM               = "ppm"
	MicrogramsPerCube = "µg/m³"
)

// ppmFactors scale a mixing ratio to parts per million.
var ppmFactors = map[string]float64{
	"ppb":    1e-3,
	"ppt":    1e-6,
	"pp100m": 1e-2,
}

// massAliases are spellings of µg/m³ seen in upstream feeds.
var massAliases = map[string]bool{
	"µg/m3":  true,
	"ug/m3":  true,
	"ug/m³":  true,
	"μg/m3":  true, // Greek mu
	"μg/m³":  true,
	"µg/m³":  true,
	"ug m-3": true,
}

// Converter is the default unit conversion step. It never fails; the error
// return satisfies the pipeline's converter contract.
type Converter struct{}

// Convert returns a copy of ms with units normalized. Unknown units pass through.
func (Converter) Convert(_ context.Context, ms []domain.Measurement) ([]domain.Measurement, error) {
	out := make([]domain.Measurement, len(ms))
	for i, m := range ms {
		out[i] = convert(m)
	}
	return out, nil
}

func convert(m domain.Measurement) domain.Measurement {
	unit := strings.ToLower(strings.TrimSpace(m.Unit))
	if f, ok := ppmFactors[unit]; ok {
		m.Value *= f
		m.Unit = PPM
		return m
	}
	if massAliases[unit] {
		m.Unit = MicrogramsPerCube
	}
	return m
}

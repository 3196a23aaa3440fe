package main

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"luqy/internal/schema"
)

// jsonFloat renders NaN and infinities as null, which encoding/json would
// otherwise reject. Padded spectral slots are NaN, so every record with a
// short data row hits this.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type settingsJSON struct {
	LaserIntensity    *jsonFloat `json:"laser_intensity,omitempty"`
	BiasVoltage       *jsonFloat `json:"bias_voltage,omitempty"`
	SMUCurrentDensity *jsonFloat `json:"smu_current_density,omitempty"`
	IntegrationTime   *jsonFloat `json:"integration_time,omitempty"`
	DelayTime         *jsonFloat `json:"delay_time,omitempty"`
	EQEAtLaser        *jsonFloat `json:"eqe_at_laser,omitempty"`
	LaserSpotSize     *jsonFloat `json:"laser_spot_size,omitempty"`
	SubcellArea       *jsonFloat `json:"subcell_area,omitempty"`
	Subcell           string     `json:"subcell,omitempty"`
	Timestamp         string     `json:"timestamp,omitempty"`
}

type resultJSON struct {
	LuQY                    *jsonFloat  `json:"luqy,omitempty"`
	QFLS                    *jsonFloat  `json:"qfls,omitempty"`
	QFLSHET                 *jsonFloat  `json:"qfls_het,omitempty"`
	QFLSConfidence          *jsonFloat  `json:"qfls_confidence,omitempty"`
	Bandgap                 *jsonFloat  `json:"bandgap,omitempty"`
	DerivedJsc              *jsonFloat  `json:"derived_jsc,omitempty"`
	Wavelength              []jsonFloat `json:"wavelength,omitempty"`
	LuminescenceFluxDensity []jsonFloat `json:"luminescence_flux_density,omitempty"`
	RawSpectrumCounts       []jsonFloat `json:"raw_spectrum_counts,omitempty"`
	DarkSpectrumCounts      []jsonFloat `json:"dark_spectrum_counts,omitempty"`
}

type recordJSON struct {
	File     string       `json:"file"`
	Method   string       `json:"method"`
	Index    int          `json:"index"`
	Settings settingsJSON `json:"settings"`
	Result   resultJSON   `json:"result"`
}

func jsonPtr(f *float64) *jsonFloat {
	if f == nil {
		return nil
	}
	v := jsonFloat(*f)
	return &v
}

func jsonSlice(fs []float64) []jsonFloat {
	if fs == nil {
		return nil
	}
	out := make([]jsonFloat, len(fs))
	for i, f := range fs {
		out[i] = jsonFloat(f)
	}
	return out
}

func recordView(file string, rec *schema.Record) recordJSON {
	return recordJSON{
		File:   file,
		Method: rec.Method,
		Index:  rec.Index,
		Settings: settingsJSON{
			LaserIntensity:    jsonPtr(rec.Settings.LaserIntensity),
			BiasVoltage:       jsonPtr(rec.Settings.BiasVoltage),
			SMUCurrentDensity: jsonPtr(rec.Settings.SMUCurrentDensity),
			IntegrationTime:   jsonPtr(rec.Settings.IntegrationTime),
			DelayTime:         jsonPtr(rec.Settings.DelayTime),
			EQEAtLaser:        jsonPtr(rec.Settings.EQEAtLaser),
			LaserSpotSize:     jsonPtr(rec.Settings.LaserSpotSize),
			SubcellArea:       jsonPtr(rec.Settings.SubcellArea),
			Subcell:           rec.Settings.Subcell,
			Timestamp:         rec.Settings.Timestamp,
		},
		Result: resultJSON{
			LuQY:                    jsonPtr(rec.Result.LuQY),
			QFLS:                    jsonPtr(rec.Result.QFLS),
			QFLSHET:                 jsonPtr(rec.Result.QFLSHET),
			QFLSConfidence:          jsonPtr(rec.Result.QFLSConfidence),
			Bandgap:                 jsonPtr(rec.Result.Bandgap),
			DerivedJsc:              jsonPtr(rec.Result.DerivedJsc),
			Wavelength:              jsonSlice(rec.Result.Wavelength),
			LuminescenceFluxDensity: jsonSlice(rec.Result.LuminescenceFluxDensity),
			RawSpectrumCounts:       jsonSlice(rec.Result.RawSpectrumCounts),
			DarkSpectrumCounts:      jsonSlice(rec.Result.DarkSpectrumCounts),
		},
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

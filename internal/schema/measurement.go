package schema

import (
	"log/slog"

	"luqy/internal/luqyfile"
	"luqy/internal/logging"
)

// Method is the descriptive name attached to every record.
const Method = "LuQY Pro absolute photoluminescence"

// Settings holds the experimental parameters of one measurement. Numeric
// fields are nil when the file did not supply a usable value.
type Settings struct {
	LaserIntensity    *float64 `json:"laser_intensity,omitempty"`
	BiasVoltage       *float64 `json:"bias_voltage,omitempty"`
	SMUCurrentDensity *float64 `json:"smu_current_density,omitempty"`
	IntegrationTime   *float64 `json:"integration_time,omitempty"`
	DelayTime         *float64 `json:"delay_time,omitempty"`
	EQEAtLaser        *float64 `json:"eqe_at_laser,omitempty"`
	LaserSpotSize     *float64 `json:"laser_spot_size,omitempty"`
	SubcellArea       *float64 `json:"subcell_area,omitempty"`
	Subcell           string   `json:"subcell,omitempty"`
	Timestamp         string   `json:"timestamp,omitempty"`
}

// Result holds the derived scalar results and spectral arrays of one
// measurement. RawSpectrumCounts and DarkSpectrumCounts stay nil when the
// file never supplied those columns.
type Result struct {
	LuQY                    *float64  `json:"luqy,omitempty"`
	QFLS                    *float64  `json:"qfls,omitempty"`
	QFLSHET                 *float64  `json:"qfls_het,omitempty"`
	QFLSConfidence          *float64  `json:"qfls_confidence,omitempty"`
	Bandgap                 *float64  `json:"bandgap,omitempty"`
	DerivedJsc              *float64  `json:"derived_jsc,omitempty"`
	Wavelength              []float64 `json:"wavelength,omitempty"`
	LuminescenceFluxDensity []float64 `json:"luminescence_flux_density,omitempty"`
	RawSpectrumCounts       []float64 `json:"raw_spectrum_counts,omitempty"`
	DarkSpectrumCounts      []float64 `json:"dark_spectrum_counts,omitempty"`
}

// Record is one complete measurement entry.
type Record struct {
	Method   string   `json:"method"`
	Index    int      `json:"index"`
	Settings Settings `json:"settings"`
	Result   Result   `json:"result"`
}

func floatSetter[T any](assign func(*T, *float64)) func(*T, luqyfile.Value) bool {
	return func(target *T, v luqyfile.Value) bool {
		f, ok := v.Float()
		if !ok {
			return false
		}
		assign(target, &f)
		return true
	}
}

func stringSetter[T any](assign func(*T, string)) func(*T, luqyfile.Value) bool {
	return func(target *T, v luqyfile.Value) bool {
		s, ok := v.Text()
		if !ok {
			return false
		}
		assign(target, s)
		return true
	}
}

// settingSetters is the closed set of recognized setting fields.
var settingSetters = map[luqyfile.SettingField]func(*Settings, luqyfile.Value) bool{
	luqyfile.SettingLaserIntensity:    floatSetter(func(s *Settings, f *float64) { s.LaserIntensity = f }),
	luqyfile.SettingBiasVoltage:       floatSetter(func(s *Settings, f *float64) { s.BiasVoltage = f }),
	luqyfile.SettingSMUCurrentDensity: floatSetter(func(s *Settings, f *float64) { s.SMUCurrentDensity = f }),
	luqyfile.SettingIntegrationTime:   floatSetter(func(s *Settings, f *float64) { s.IntegrationTime = f }),
	luqyfile.SettingDelayTime:         floatSetter(func(s *Settings, f *float64) { s.DelayTime = f }),
	luqyfile.SettingEQEAtLaser:        floatSetter(func(s *Settings, f *float64) { s.EQEAtLaser = f }),
	luqyfile.SettingLaserSpotSize:     floatSetter(func(s *Settings, f *float64) { s.LaserSpotSize = f }),
	luqyfile.SettingSubcellArea:       floatSetter(func(s *Settings, f *float64) { s.SubcellArea = f }),
	luqyfile.SettingSubcell:           stringSetter(func(s *Settings, v string) { s.Subcell = v }),
	luqyfile.SettingTimestamp:         stringSetter(func(s *Settings, v string) { s.Timestamp = v }),
}

// resultSetters is the closed set of recognized result fields.
var resultSetters = map[luqyfile.ResultField]func(*Result, luqyfile.Value) bool{
	luqyfile.ResultLuQY:           floatSetter(func(r *Result, f *float64) { r.LuQY = f }),
	luqyfile.ResultQFLS:           floatSetter(func(r *Result, f *float64) { r.QFLS = f }),
	luqyfile.ResultQFLSHET:        floatSetter(func(r *Result, f *float64) { r.QFLSHET = f }),
	luqyfile.ResultQFLSConfidence: floatSetter(func(r *Result, f *float64) { r.QFLSConfidence = f }),
	luqyfile.ResultBandgap:        floatSetter(func(r *Result, f *float64) { r.Bandgap = f }),
	luqyfile.ResultDerivedJsc:     floatSetter(func(r *Result, f *float64) { r.DerivedJsc = f }),
}

// ApplySetting assigns one setting by name. Missing values are skipped;
// unknown names and type mismatches are dropped with a debug log.
func (s *Settings) ApplySetting(field luqyfile.SettingField, v luqyfile.Value, logger *slog.Logger) {
	if v.IsMissing() {
		return
	}
	setter, ok := settingSetters[field]
	if !ok {
		logger.Debug("unknown setting field", "field", string(field))
		return
	}
	if !setter(s, v) {
		logger.Debug("setting value type mismatch", "field", string(field), "value", v.String())
	}
}

// ApplyResult assigns one result by name with the same drop-and-log
// behavior as ApplySetting.
func (r *Result) ApplyResult(field luqyfile.ResultField, v luqyfile.Value, logger *slog.Logger) {
	if v.IsMissing() {
		return
	}
	setter, ok := resultSetters[field]
	if !ok {
		logger.Debug("unknown result field", "field", string(field))
		return
	}
	if !setter(r, v) {
		logger.Debug("result value type mismatch", "field", string(field), "value", v.String())
	}
}

// Build assembles one Record per parsed measurement.
func Build(measurements []luqyfile.Measurement, logger *slog.Logger) []*Record {
	if logger == nil {
		logger = logging.NewNop()
	}
	records := make([]*Record, 0, len(measurements))
	for _, m := range measurements {
		rec := &Record{Method: Method, Index: m.Index}
		for field, v := range m.Settings {
			rec.Settings.ApplySetting(field, v, logger)
		}
		for field, v := range m.Results {
			rec.Result.ApplyResult(field, v, logger)
		}
		if len(m.Wavelength) > 0 {
			rec.Result.Wavelength = m.Wavelength
			rec.Result.LuminescenceFluxDensity = m.Flux
			rec.Result.RawSpectrumCounts = m.Raw
			rec.Result.DarkSpectrumCounts = m.Dark
		}
		records = append(records, rec)
	}
	return records
}

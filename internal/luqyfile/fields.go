package luqyfile

// SettingField names one experimental parameter extracted from the header.
type SettingField string

const (
	SettingLaserIntensity    SettingField = "laser_intensity"
	SettingBiasVoltage       SettingField = "bias_voltage"
	SettingSMUCurrentDensity SettingField = "smu_current_density"
	SettingIntegrationTime   SettingField = "integration_time"
	SettingDelayTime         SettingField = "delay_time"
	SettingEQEAtLaser        SettingField = "eqe_at_laser"
	SettingLaserSpotSize     SettingField = "laser_spot_size"
	SettingSubcellArea       SettingField = "subcell_area"
	SettingSubcell           SettingField = "subcell"
	SettingTimestamp         SettingField = "timestamp"
)

// ResultField names one derived scalar result extracted from the header.
type ResultField string

const (
	ResultLuQY           ResultField = "luqy"
	ResultQFLS           ResultField = "qfls"
	ResultQFLSHET        ResultField = "qfls_het"
	ResultQFLSConfidence ResultField = "qfls_confidence"
	ResultBandgap        ResultField = "bandgap"
	ResultDerivedJsc     ResultField = "derived_jsc"
)

// sunsKey is the one header whose values arrive in suns rather than
// mW/cm^2. 1 sun = 100 mW/cm^2, so cells under this key are scaled by 100
// before storage in the canonical intensity field.
const sunsKey = "Laser intensity (suns)"

// settingKeys maps canonical header spellings to setting fields. Keys must
// already be canonicalized (headerkey.Canonicalize) before lookup, which is
// what keeps spelling drift out of this table. Disjoint from resultKeys.
var settingKeys = map[string]SettingField{
	"Laser intensity (mW/cm^2)":     SettingLaserIntensity,
	"Laser intensity (suns)":        SettingLaserIntensity,
	"Bias Voltage (V)":              SettingBiasVoltage,
	"Bias voltage (V)":              SettingBiasVoltage,
	"SMU current density (mA/cm^2)": SettingSMUCurrentDensity,
	"Integration Time (ms)":         SettingIntegrationTime,
	"Delay time (s)":                SettingDelayTime,
	"EQE @ laser wavelength":        SettingEQEAtLaser,
	"Laser spot size (cm^2)":        SettingLaserSpotSize,
	"Subcell area (cm^2)":           SettingSubcellArea,
	"Subcell":                       SettingSubcell,
}

// resultKeys maps canonical header spellings to result fields.
var resultKeys = map[string]ResultField{
	"LuQY (%)":        ResultLuQY,
	"QFLS (eV)":       ResultQFLS,
	"QFLS LuQY (eV)":  ResultQFLS,
	"QFLS HET (eV)":   ResultQFLSHET,
	"QFLS Confidence": ResultQFLSConfidence,
	"QFLS confidence": ResultQFLSConfidence,
	"Bandgap (eV)":    ResultBandgap,
	"Jsc (mA/cm^2)":   ResultDerivedJsc,
}

// LookupSetting resolves a canonical header key to a setting field.
func LookupSetting(key string) (SettingField, bool) {
	f, ok := settingKeys[key]
	return f, ok
}

// LookupResult resolves a canonical header key to a result field.
func LookupResult(key string) (ResultField, bool) {
	f, ok := resultKeys[key]
	return f, ok
}

// Categorical reports whether the field stores a string rather than a
// physical quantity.
func (f SettingField) Categorical() bool {
	return f == SettingSubcell || f == SettingTimestamp
}

// knownHeaderKey reports whether a canonical key names any recognized
// setting or result. The classifier uses it when inferring the measurement
// count from header row widths.
func knownHeaderKey(key string) bool {
	if _, ok := settingKeys[key]; ok {
		return true
	}
	_, ok := resultKeys[key]
	return ok
}

package headerkey

import "testing"

func TestCanonicalizeUnitSpellings(t *testing.T) {
	variants := []string{
		"Subcell area (cm²)",
		"Subcell area (cm^2)",
		"Subcell area (cm**2)",
		"Subcell area (cm2)",
		"Subcell area (cmÂ²)",
	}
	want := "Subcell area (cm^2)"
	for _, raw := range variants {
		if got := Canonicalize(raw); got != want {
			t.Errorf("Canonicalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestCanonicalizeCompoundUnits(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"SMU current density (mA/cm²)", "SMU current density (mA/cm^2)"},
		{"SMU current density (mA/cm2)", "SMU current density (mA/cm^2)"},
		{"Laser intensity (mW/cm²)", "Laser intensity (mW/cm^2)"},
		{"Laser intensity (mW/cm^2)", "Laser intensity (mW/cm^2)"},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.raw); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"leading and trailing", "  Bias voltage (V)\t", "Bias voltage (V)"},
		{"internal runs", "Bias   voltage \t (V)", "Bias voltage (V)"},
		{"non-breaking space", "Bias\u00a0voltage (V)", "Bias voltage (V)"},
		{"empty", "", ""},
		{"only whitespace", " \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonicalize(tt.raw); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Subcell area (cm²)",
		"Laser  intensity\u00a0(suns)",
		"QFLS Confidence",
		"cm**2 cm2 cmÂ²",
		"plain text",
		"",
	}
	for _, raw := range inputs {
		once := Canonicalize(raw)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

package luqyfile

import (
	"math"
	"reflect"
	"testing"
)

func singleFileLines() []string {
	return []string{
		"Time\t8/27/2025 2:03 PM",
		"Laser intensity (suns)\t0.9722",
		"Bias Voltage (V)\t0",
		"Integration Time (ms)\t100",
		"Subcell\tTop",
		"LuQY (%)\t1.234",
		"Bandgap (eV)\t1.53",
		"--------------------------------",
		"Wavelength (nm)\tLum. flux density\tRaw counts\tDark counts",
		"549.5612\t0\t1501.733\t1500.533",
		"550.1234\t12.5\t1600.1\t1500.2",
	}
}

func sweepFileLines() []string {
	return []string{
		"Time\t8/27/2025\t2:03 PM\t2:05 PM",
		"Laser intensity (suns)\t0.9722\t1.0",
		"LuQY (%)\t1.2\t1.3",
		"--------------------------------",
		"Wavelength (nm)\tM0\tM1",
		"549.5\t10\t20",
		"550.1\t11\t21",
	}
}

func TestParseSingleMeasurementFile(t *testing.T) {
	measurements := Parse(singleFileLines(), nil)
	if len(measurements) != 1 {
		t.Fatalf("measurements = %d, want 1", len(measurements))
	}
	m := measurements[0]

	ts, _ := m.Settings[SettingTimestamp].Text()
	if ts != "2025-08-27T14:03:00" {
		t.Errorf("timestamp = %q, want 2025-08-27T14:03:00", ts)
	}
	if got := mustFloat(t, m.Settings[SettingLaserIntensity]); math.Abs(got-97.22) > 1e-9 {
		t.Errorf("laser_intensity = %v, want 97.22", got)
	}
	if got := mustFloat(t, m.Results[ResultLuQY]); math.Abs(got-1.234) > 1e-9 {
		t.Errorf("luqy = %v, want 1.234", got)
	}

	if len(m.Wavelength) != 2 || len(m.Flux) != 2 || len(m.Raw) != 2 || len(m.Dark) != 2 {
		t.Fatalf("array lengths %d/%d/%d/%d, want all 2",
			len(m.Wavelength), len(m.Flux), len(m.Raw), len(m.Dark))
	}
	if m.Wavelength[0] != 549.5612 || m.Flux[0] != 0 || m.Raw[0] != 1501.733 || m.Dark[0] != 1500.533 {
		t.Errorf("first spectral row = %v/%v/%v/%v",
			m.Wavelength[0], m.Flux[0], m.Raw[0], m.Dark[0])
	}
}

func TestParseSweepFile(t *testing.T) {
	measurements := Parse(sweepFileLines(), nil)
	if len(measurements) != 2 {
		t.Fatalf("measurements = %d, want 2", len(measurements))
	}
	for i, m := range measurements {
		if len(m.Flux) != len(m.Wavelength) {
			t.Errorf("measurement %d: flux length %d != wavelength length %d",
				i, len(m.Flux), len(m.Wavelength))
		}
		if m.Raw != nil || m.Dark != nil {
			t.Errorf("measurement %d: raw/dark should be nil in sweep files", i)
		}
		ts, _ := m.Settings[SettingTimestamp].Text()
		if ts[:10] != "2025-08-27" {
			t.Errorf("measurement %d timestamp = %q, want date 2025-08-27", i, ts)
		}
	}
	if measurements[1].Flux[1] != 21 {
		t.Errorf("measurement 1 flux[1] = %v, want 21", measurements[1].Flux[1])
	}
	// Both measurements share one wavelength axis.
	if !reflect.DeepEqual(measurements[0].Wavelength, measurements[1].Wavelength) {
		t.Error("wavelength axis should be shared across measurements")
	}
}

func TestParseZeroLines(t *testing.T) {
	if got := Parse(nil, nil); got != nil {
		t.Errorf("Parse(nil) = %v, want nil", got)
	}
	if got := Parse([]string{}, nil); got != nil {
		t.Errorf("Parse(empty) = %v, want nil", got)
	}
}

func TestParseHeaderOnlyFile(t *testing.T) {
	lines := []string{
		"Laser intensity (suns)\t0.9722",
		"LuQY (%)\t1.234",
	}
	measurements := Parse(lines, nil)
	if len(measurements) != 1 {
		t.Fatalf("measurements = %d, want 1", len(measurements))
	}
	if len(measurements[0].Wavelength) != 0 {
		t.Errorf("wavelength rows = %d, want 0", len(measurements[0].Wavelength))
	}
	if got := mustFloat(t, measurements[0].Results[ResultLuQY]); math.Abs(got-1.234) > 1e-9 {
		t.Errorf("luqy = %v, want 1.234", got)
	}
}

func TestMeasurementLabels(t *testing.T) {
	if got := MeasurementLabels(singleFileLines()); got != nil {
		t.Errorf("single-measurement labels = %v, want nil", got)
	}
	want := []string{"0", "1"}
	if got := MeasurementLabels(sweepFileLines()); !reflect.DeepEqual(got, want) {
		t.Errorf("sweep labels = %v, want %v", got, want)
	}
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"luqy/internal/ingest"
	"luqy/internal/schema"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse export files and print their measurements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			useJSON := asJSON || cfg.Output.Format == "json"
			svc := ingest.NewService(cfg, logger)
			views := make([]recordJSON, 0)

			for _, arg := range args {
				if !ingest.Matches(arg) {
					return fmt.Errorf("%s is not a recognized export file (.txt, .csv, or .tsv)", arg)
				}
				records, err := svc.Ingest(cmd.Context(), arg)
				if err != nil {
					return err
				}
				if useJSON {
					for _, rec := range records {
						views = append(views, recordView(arg, rec))
					}
					continue
				}
				printRecords(cmd.OutOrStdout(), arg, records)
			}

			if useJSON {
				return writeJSON(cmd, views)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON instead of tables")
	return cmd
}

func printRecords(out io.Writer, file string, records []*schema.Record) {
	if len(records) == 0 {
		fmt.Fprintf(out, "%s: no measurements\n", file)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s: measurement %d\n", file, rec.Index)
		if rows := settingRows(rec.Settings); len(rows) > 0 {
			fmt.Fprintln(out, renderFieldTable("Setting", rows))
		}
		if rows := resultRows(rec.Result); len(rows) > 0 {
			fmt.Fprintln(out, renderFieldTable("Result", rows))
		}
		fmt.Fprintln(out, spectraSummary(rec.Result))
	}
}

func settingRows(s schema.Settings) []fieldRow {
	var rows []fieldRow
	add := func(name string, f *float64) {
		if f != nil {
			rows = append(rows, fieldRow{name, formatFloat(*f)})
		}
	}
	if s.Timestamp != "" {
		rows = append(rows, fieldRow{"Timestamp", s.Timestamp})
	}
	add("Laser intensity (mW/cm^2)", s.LaserIntensity)
	add("Bias voltage (V)", s.BiasVoltage)
	add("SMU current density (mA/cm^2)", s.SMUCurrentDensity)
	add("Integration time (ms)", s.IntegrationTime)
	add("Delay time (s)", s.DelayTime)
	add("EQE @ laser wavelength", s.EQEAtLaser)
	add("Laser spot size (cm^2)", s.LaserSpotSize)
	add("Subcell area (cm^2)", s.SubcellArea)
	if s.Subcell != "" {
		rows = append(rows, fieldRow{"Subcell", s.Subcell})
	}
	return rows
}

func resultRows(r schema.Result) []fieldRow {
	var rows []fieldRow
	add := func(name string, f *float64) {
		if f != nil {
			rows = append(rows, fieldRow{name, formatFloat(*f)})
		}
	}
	add("LuQY (%)", r.LuQY)
	add("QFLS (eV)", r.QFLS)
	add("QFLS HET (eV)", r.QFLSHET)
	add("QFLS confidence", r.QFLSConfidence)
	add("Bandgap (eV)", r.Bandgap)
	add("Jsc (mA/cm^2)", r.DerivedJsc)
	return rows
}

func spectraSummary(r schema.Result) string {
	if len(r.Wavelength) == 0 {
		return "spectra: none"
	}
	channels := "flux"
	if r.RawSpectrumCounts != nil {
		channels = "flux, raw, dark"
	}
	return fmt.Sprintf("spectra: %d rows, %s–%s nm (%s)",
		len(r.Wavelength),
		formatFloat(r.Wavelength[0]),
		formatFloat(r.Wavelength[len(r.Wavelength)-1]),
		channels,
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

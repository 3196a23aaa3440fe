package headerkey

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unitReplacer rewrites known mis-encoded or alternate spellings of
// squared-area and per-area units to one canonical form. NFKC folds the
// superscript two to a plain "2" before this runs, so both the raw and the
// folded spellings are listed; compound units come first so they win over
// the bare area fixups.
var unitReplacer = strings.NewReplacer(
	"mA/cmÂ²", "mA/cm^2",
	"mA/cmÂ2", "mA/cm^2",
	"mA/cm²", "mA/cm^2",
	"mA/cm2", "mA/cm^2",
	"mW/cmÂ²", "mW/cm^2",
	"mW/cmÂ2", "mW/cm^2",
	"mW/cm²", "mW/cm^2",
	"mW/cm2", "mW/cm^2",
	"cmÂ²", "cm^2",
	"cmÂ2", "cm^2",
	"cm²", "cm^2",
	"cm�2", "cm^2",
	"cm�", "cm^2",
	"cm**2", "cm^2",
	"cm2", "cm^2",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Canonicalize normalizes a raw header label into a stable lookup key.
// It is total (any input yields a key) and idempotent.
func Canonicalize(raw string) string {
	s := norm.NFKC.String(raw)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimSpace(s)
	s = unitReplacer.Replace(s)
	return whitespaceRun.ReplaceAllString(s, " ")
}

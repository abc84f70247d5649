package render

import (
	"strings"
	"testing"
)

func TestConvertReportsMissingConverter(t *testing.T) {
	// With an empty PATH the converter binary cannot be found, so both
	// exports must fail with the install hint instead of a bare exec error.
	t.Setenv("PATH", "")

	if _, err := ToPDF([]byte("<svg/>")); err == nil || !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("ToPDF without converter = %v, want librsvg install hint", err)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2.0); err == nil || !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("ToPNG without converter = %v, want librsvg install hint", err)
	}
}

package terminal

import (
	"testing"

	"sbomatic/internal/testutil"
)

func TestColorize(t *testing.T) {
	got := Colorize("SBOM Location: /x/bom.json", BrightGreen)

	testutil.AssertEqual(t, got, "\033[92mSBOM Location: /x/bom.json\033[0m", "colorized")
	testutil.AssertEqual(t, StripANSI(got), "SBOM Location: /x/bom.json", "stripped")
}

func TestStripANSI_PlainText(t *testing.T) {
	testutil.AssertEqual(t, StripANSI("no color"), "no color", "unchanged")
}

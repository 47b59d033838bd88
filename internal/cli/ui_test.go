package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/openblocks/blocklink/pkg/errors"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     string
		wantCode bool
	}{
		{"coded", errors.New(errors.ErrCodeBlockNotFound, "no block %q in scene", "x"), `no block "x" in scene`, true},
		{"plain", stderrors.New("accepts 3 arg(s), received 1"), "accepts 3 arg(s), received 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatError = %q, want it to contain %q", got, tt.want)
			}
			if hasCode := strings.Contains(got, "BLOCK_NOT_FOUND"); hasCode != tt.wantCode {
				t.Errorf("code shown = %v, want %v", hasCode, tt.wantCode)
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	rows := [][]string{
		{"a.plug[n]", "b.socket[n]", "yes"},
		{"a.plug[n]", "b.after[n]", "no"},
	}
	out := newTable(rows, 2, "Plug", "Socket", "Admissible").Render()
	for _, want := range []string{"Plug", "Admissible", "b.socket[n]", "b.after[n]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printSuccess(&buf, "linked %s", "a")
	printInfo(&buf, "no link")
	printKeyValue(&buf, "distance", "4.00")
	printDetail(&buf, "dragged block at %s", "(1,2)")

	out := buf.String()
	for _, want := range []string{iconSuccess + " linked a", iconInfo + " no link", "distance", "4.00", "(1,2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if formatDistance(14.1421356) != "14.14" {
		t.Errorf("formatDistance = %q", formatDistance(14.1421356))
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/openblocks/blocklink/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	orig := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = orig[0], orig[1], orig[2] })

	SetVersion("1.0.0", "abc123", "2024-01-01")

	if buildinfo.Version != "1.0.0" {
		t.Errorf("version = %q, want %q", buildinfo.Version, "1.0.0")
	}
	if buildinfo.Commit != "abc123" {
		t.Errorf("commit = %q, want %q", buildinfo.Commit, "abc123")
	}
	if buildinfo.Date != "2024-01-01" {
		t.Errorf("date = %q, want %q", buildinfo.Date, "2024-01-01")
	}
}

func TestSetVersionEmpty(t *testing.T) {
	orig := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = orig[0], orig[1], orig[2] })

	SetVersion("", "", "")

	if buildinfo.Version != orig[0] || buildinfo.Commit != orig[1] || buildinfo.Date != orig[2] {
		t.Errorf("empty SetVersion changed build info to %s", buildinfo.String())
	}
}

func TestExecuteVersion(t *testing.T) {
	orig := [3]string{buildinfo.Version, buildinfo.Commit, buildinfo.Date}
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = orig[0], orig[1], orig[2] })
	SetVersion("v0.3.0", "deadbee", "2025-01-02")

	var out, logs bytes.Buffer
	if err := Execute(context.Background(), []string{"--version"}, &out, &logs); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"blocklink version v0.3.0", "commit: deadbee"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("version output missing %q:\n%s", want, out.String())
		}
	}
}

func TestExecuteArgErrors(t *testing.T) {
	var out, logs bytes.Buffer
	if err := Execute(context.Background(), []string{"check", "only-one"}, &out, &logs); err == nil {
		t.Error("expected argument count error")
	}
	if err := Execute(context.Background(), []string{"rules", "extra"}, &out, &logs); err == nil {
		t.Error("expected error for extra argument")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out, logs bytes.Buffer
			if err := Execute(context.Background(), []string{"completion", shell}, &out, &logs); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), "blocklink") {
				t.Errorf("%s completion does not mention blocklink", shell)
			}
		})
	}

	var out, logs bytes.Buffer
	if err := Execute(context.Background(), []string{"completion", "tcsh"}, &out, &logs); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

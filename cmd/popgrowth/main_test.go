package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/popgrowth/internal/logistic"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outPath, configFile, preset, addr = "", "", "", ""
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table", "--n0", "100", "--r", "0.5", "--k", "500", "--tmax", "2")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	for _, want := range []string{"100.000", "145.938", "202.305"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDomainErrorSurfaces(t *testing.T) {
	_, err := execute(t, "table", "--preset", "blowup")
	if !errors.Is(err, logistic.ErrParameterDomain) {
		t.Fatalf("expected domain error, got %v", err)
	}
	de, ok := logistic.AsDomainError(err)
	if !ok || !strings.Contains(de.Explain(), "K ≥ N₀") {
		t.Errorf("explanation missing corrective option")
	}
}

func TestFlagsOverridePreset(t *testing.T) {
	// blowup has K=50 < N0; raising K clears the guard.
	out, err := execute(t, "table", "--preset", "blowup", "--k", "500")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(out, "K=500") {
		t.Errorf("flag did not override preset:\n%s", out)
	}
}

func TestOutOfBoundsFlag(t *testing.T) {
	_, err := execute(t, "table", "--tmax", "5000")
	var be *logistic.BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected bounds error, got %v", err)
	}
	if be.Field.Name != "tmax" {
		t.Errorf("field = %q, want tmax", be.Field.Name)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := execute(t, "table", "--preset", "nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestExportCSVToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	if _, err := execute(t, "export-csv", "--tmax", "3", "--out", path); err != nil {
		t.Fatalf("export-csv: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d lines, want header + 4 rows", len(lines))
	}
	if lines[0] != "t,N" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestSVGCommand(t *testing.T) {
	out, err := execute(t, "svg")
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("not an svg document: %.40s", out)
	}
}

func TestPlotCommand(t *testing.T) {
	out, err := execute(t, "plot", "--height", "5")
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(out, "N over t") {
		t.Errorf("missing caption:\n%s", out)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"blowup", "decline", "fast", "growth", "overshoot"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %s", name)
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		wantErr string
	}{
		{"ok", []string{"table", "--tmax", "3"}, 0, ""},
		{"domain error", []string{"table", "--preset", "blowup"}, exitDomain, "K ≥ N₀"},
		{"out of bounds", []string{"table", "--tmax", "5000"}, exitError, "tmax = 5000 outside [1, 1000]"},
		{"unknown theme", []string{"--theme", "nope"}, exitError, "unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath, configFile, preset, addr = "", "", "", ""
			var out, errOut bytes.Buffer
			code := run(tt.args, &out, &errOut)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.code, errOut.String())
			}
			if tt.wantErr != "" && !strings.Contains(errOut.String(), tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, errOut.String())
			}
			if tt.code == exitDomain && strings.Contains(out.String(), "100.000") {
				t.Error("no table may be printed on a domain error")
			}
		})
	}
}

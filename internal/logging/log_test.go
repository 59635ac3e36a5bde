package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetupLevels(t *testing.T) {
	t.Cleanup(func() { _ = Setup("info") })

	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{in: "", want: log.InfoLevel},
		{in: "debug", want: log.DebugLevel},
		{in: "warn", want: log.WarnLevel},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		err := Setup(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Setup(%q) err = %v", tt.in, err)
		}
		if err == nil && Logger.GetLevel() != tt.want {
			t.Fatalf("Setup(%q) level = %v, want %v", tt.in, Logger.GetLevel(), tt.want)
		}
	}
}

func TestToFile(t *testing.T) {
	t.Cleanup(func() { Logger.SetOutput(os.Stderr) })
	path := filepath.Join(t.TempDir(), "dpselect.log")

	c, err := ToFile(path)
	if err != nil {
		t.Fatalf("to file: %v", err)
	}
	Info("picker started", "backend", "index")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "picker started") || !strings.Contains(string(data), "index") {
		t.Fatalf("log file = %q", data)
	}
}

func TestWarnRespectsLevel(t *testing.T) {
	t.Cleanup(func() {
		Logger.SetOutput(os.Stderr)
		_ = Setup("info")
	})
	var buf strings.Builder
	Logger.SetOutput(&buf)

	if err := Setup("error"); err != nil {
		t.Fatal(err)
	}
	Warn("unresolved values", "n", 2)
	if buf.Len() != 0 {
		t.Fatalf("warn logged at error level: %q", buf.String())
	}
	if err := Setup("warn"); err != nil {
		t.Fatal(err)
	}
	Warn("unresolved values", "n", 2)
	if !strings.Contains(buf.String(), "unresolved values") {
		t.Fatalf("warn missing: %q", buf.String())
	}
}

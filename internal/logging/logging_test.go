package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		on      bool
		wantErr bool
	}{
		{in: "", on: false},
		{in: "off", on: false},
		{in: "debug", want: log.DebugLevel, on: true},
		{in: "info", want: log.InfoLevel, on: true},
		{in: "warn", want: log.WarnLevel, on: true},
		{in: "error", want: log.ErrorLevel, on: true},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, on, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if on != tt.on {
				t.Errorf("on = %v, want %v", on, tt.on)
			}
			if on && got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("drag started", "x", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, "drag started") || !strings.Contains(out, "x=3") {
		t.Errorf("missing info line: %q", out)
	}
}

func TestNewWritesToStateFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	logger, closer, err := New("debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "rubberband.log" {
		t.Errorf("unexpected log path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewOffDiscards(t *testing.T) {
	logger, closer, err := New("off")
	if err != nil {
		t.Fatal(err)
	}
	logger.Error("nobody hears this")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

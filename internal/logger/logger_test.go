package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsFilterOutput(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug %d", 1)
			log.Info("info %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "[DBG] "); got != tt.wantDebug {
				t.Errorf("debug present = %v, want %v (%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF] "); got != tt.wantInfo {
				t.Errorf("info present = %v, want %v (%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	log.Error("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at LevelOff, got %q", buf.String())
	}

	log.SetLevel(LevelNormal)
	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected normal, got %s", log.GetLevel())
	}
	log.Error("shown")
	if !strings.Contains(buf.String(), "[ERR] ") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"info", LevelNormal, false},
		{" verbose ", LevelVerbose, false},
		{"debug", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

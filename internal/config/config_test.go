package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "all fields",
			yaml: "trial_count: 250\nverbose_trace: true\nseed: 42\nresults_db: trials.db\n",
			want: Config{TrialCount: 250, VerboseTrace: true, Seed: 42, ResultsDB: "trials.db"},
		},
		{
			name: "partial",
			yaml: "seed: 7\n",
			want: Config{Seed: 7},
		},
		{
			name: "empty document",
			yaml: "",
			want: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "trail_count: 10\n"},
		{"wrong type", "trial_count: lots\n"},
		{"negative count", "trial_count: -5\n"},
		{"broken yaml", "trial_count: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse(%q) accepted invalid config", tt.yaml)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typetrial.yaml")
	if err := os.WriteFile(path, []byte("trial_count: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TrialCount != 50 {
		t.Errorf("TrialCount = %d, want 50", cfg.TrialCount)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

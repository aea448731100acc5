package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id3.yaml")
	raw := "train: a.csv\nvalidation: b.csv\ntest: c.csv\nheader: false\ndim: 3\nmax_prunes: 5\ntie_break: last\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ID3_MAX_PRUNES", "0")
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		TrainPath:      "a.csv",
		ValidationPath: "b.csv",
		TestPath:       "c.csv",
		Dim:            3,
		MaxPrunes:      0,
		TieBreak:       "last",
		Port:           "9090",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
	t.Setenv("ID3_MAX_PRUNES", "two")
	if _, err := Load(""); err == nil {
		t.Error("non-numeric ID3_MAX_PRUNES accepted")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*Config){
		"tie break": func(c *Config) { c.TieBreak = "random" },
		"negative":  func(c *Config) { c.MaxPrunes = -1 },
		"no train":  func(c *Config) { c.TrainPath = "" },
		"zero dim":  func(c *Config) { c.Dim = 0 },
		"bad port":  func(c *Config) { c.Port = "http" },
	}
	for name, mutate := range tests {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

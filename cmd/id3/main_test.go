package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurveSizes(t *testing.T) {
	tests := []struct {
		total, points, min int
		want               []int
	}{
		{100, 5, 20, []int{20, 40, 60, 80, 100}},
		{10, 8, 50, []int{10}},
		{5, 10, 1, []int{1, 2, 3, 4, 5}},
		{30, 1, 10, []int{10, 30}},
	}
	for _, tt := range tests {
		got := curveSizes(tt.total, tt.points, tt.min)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("curveSizes(%d, %d, %d) (-want +got):\n%s", tt.total, tt.points, tt.min, diff)
		}
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestGenerateTrainCurve(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		"--train", filepath.Join(dir, "train.csv"),
		"--validation", filepath.Join(dir, "validation.csv"),
		"--test", filepath.Join(dir, "test.csv"),
	}

	run(t, append([]string{"generate", "--n", "500", "--seed", "11"}, paths...)...)
	for _, name := range []string{"train.csv", "validation.csv", "test.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	plot := filepath.Join(dir, "pruning.png")
	out := run(t, append([]string{"train", "--max-prunes", "3", "--plot", plot, "--print-tree"}, paths...)...)
	for _, s := range []string{"Árvore completa", "Árvore podada", "validation error"} {
		if !strings.Contains(out, s) {
			t.Errorf("train output lacks %q:\n%s", s, out)
		}
	}
	if _, err := os.Stat(plot); err != nil {
		t.Error(err)
	}

	csvPath := filepath.Join(dir, "curve.csv")
	out = run(t, append([]string{"curve", "--points", "3", "--min", "100",
		"--out-csv", csvPath, "--out-img", filepath.Join(dir, "curve.png")}, paths...)...)
	if strings.Count(out, "size=") != 3 {
		t.Errorf("curve output:\n%s", out)
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(raw), "\n"); lines != 4 {
		t.Errorf("curve csv has %d lines", lines)
	}
}

func TestTrainRejectsBadConfig(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"train", "--tie-break", "coin"})
	if err := cmd.Execute(); err == nil {
		t.Error("invalid tie break accepted")
	}
}

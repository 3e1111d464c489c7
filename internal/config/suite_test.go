package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gogonemnem/FDA/domain/scenario"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write suite file: %v", err)
	}
	return path
}

func TestLoadSuite_AppliesDefaults(t *testing.T) {
	path := writeSuite(t, `
scenarios:
  - name: sparse
    design_count: 10
  - name: heavy
    noise: student-t
    sigma: 0.2
`)

	cfgs, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite failed: %v", err)
	}
	if len(cfgs) != 2 {
		t.Fatalf("Expected 2 scenarios, got %d", len(cfgs))
	}

	sparse := cfgs[0]
	if sparse.Name != "sparse" || sparse.DesignCount != 10 {
		t.Errorf("Explicit fields should survive: %+v", sparse)
	}
	base := scenario.Default("sparse")
	if sparse.Replications != base.Replications || sparse.Sigma != base.Sigma {
		t.Errorf("Unset fields should take defaults: %+v", sparse)
	}

	heavy := cfgs[1]
	if heavy.Noise != scenario.NoiseStudentT || heavy.Sigma != 0.2 {
		t.Errorf("Explicit noise settings should survive: %+v", heavy)
	}
}

func TestLoadSuite_RejectsInvalidScenario(t *testing.T) {
	path := writeSuite(t, `
scenarios:
  - name: broken
    basis_size: 10
    trunc_size: 20
`)

	if _, err := LoadSuite(path); err == nil {
		t.Fatal("Suite with trunc_size > basis_size should be rejected")
	}
}

func TestLoadSuite_RejectsEmptySuite(t *testing.T) {
	path := writeSuite(t, "scenarios: []\n")
	if _, err := LoadSuite(path); err == nil {
		t.Fatal("Empty suite should be rejected")
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	if _, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Missing suite file should be rejected")
	}
}

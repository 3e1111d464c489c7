package scenario

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"missing name", func(c *Config) { c.Name = "" }, true},
		{"zero replications", func(c *Config) { c.Replications = 0 }, true},
		{"negative replications", func(c *Config) { c.Replications = -5 }, true},
		{"zero samples", func(c *Config) { c.Samples = 0 }, true},
		{"zero design count", func(c *Config) { c.DesignCount = 0 }, true},
		{"zero basis size", func(c *Config) { c.BasisSize = 0 }, true},
		{"truncation above basis size", func(c *Config) { c.TruncSize = c.BasisSize + 1 }, true},
		{"zero truncation", func(c *Config) { c.TruncSize = 0 }, true},
		{"zero MC samples", func(c *Config) { c.MCSamples = 0 }, true},
		{"zero eval points", func(c *Config) { c.EvalPoints = 0 }, true},
		{"negative sigma", func(c *Config) { c.Sigma = -0.1 }, true},
		{"zero sigma", func(c *Config) { c.Sigma = 0 }, true},
		{"zero bandwidth", func(c *Config) { c.Bandwidth = 0 }, true},
		{"unknown design policy", func(c *Config) { c.Design = "exponential" }, true},
		{"unknown noise family", func(c *Config) { c.Noise = "cauchy" }, true},
		{"poisson design", func(c *Config) { c.Design = DesignPoisson }, false},
		{"student-t noise", func(c *Config) { c.Noise = NoiseStudentT }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("test")
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestProbabilityLevels(t *testing.T) {
	levels := ProbabilityLevels()
	if len(levels) != 101 {
		t.Fatalf("Expected 101 levels, got %d", len(levels))
	}
	if levels[0] != 0 || levels[100] != 1 {
		t.Errorf("Levels should span [0,1], got [%f,%f]", levels[0], levels[100])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("Levels should be strictly increasing at index %d", i)
		}
	}
}

func TestCombinations(t *testing.T) {
	combs := Combinations()
	if len(combs) != 4 {
		t.Fatalf("Expected 4 estimator × mean combinations, got %d", len(combs))
	}

	seen := make(map[string]bool)
	for _, c := range combs {
		label := c.Label()
		if seen[label] {
			t.Errorf("Duplicate combination %s", label)
		}
		seen[label] = true
	}
}

func TestDefaultSuite_AllValid(t *testing.T) {
	for _, cfg := range DefaultSuite() {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Default suite scenario %q should validate: %v", cfg.Name, err)
		}
	}
}

// Package scenario defines the immutable configuration driving one
// simulation scenario and the result tables it produces.
package scenario

import (
	"fmt"

	"github.com/Gogonemnem/FDA/internal/errors"
)

// DesignPolicy selects how the number of design points per curve is drawn.
type DesignPolicy string

const (
	DesignFixed   DesignPolicy = "fixed"   // exactly K points
	DesignPoisson DesignPolicy = "poisson" // Poisson(K) points, possibly zero
)

// NoiseFamily selects the observation-noise distribution.
type NoiseFamily string

const (
	NoiseNormal   NoiseFamily = "normal"    // N(0, σ²)
	NoiseStudentT NoiseFamily = "student-t" // scaled Student-t, ν = 8
)

// MeanModel selects the reference mean function.
type MeanModel string

const (
	MeanZero       MeanModel = "zero"
	MeanSinusoidal MeanModel = "sinusoidal"
)

// EstimatorKind selects the curve reconstruction method.
type EstimatorKind string

const (
	EstimatorInterpolating EstimatorKind = "interpolating"
	EstimatorKernel        EstimatorKind = "kernel-smoothing"
)

// StudentTDF is the fixed degrees of freedom of the heavy-tailed noise family.
const StudentTDF = 8.0

// Sinusoid parameterizes the nonzero reference mean
// Amplitude·sin(2π·Frequency·t + Phase).
type Sinusoid struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

// Config is the immutable parameter set of one named scenario. It is passed
// by value through the pipeline; nothing mutates it after Validate.
type Config struct {
	Name string `yaml:"name"`

	Replications int `yaml:"replications"` // R
	Samples      int `yaml:"samples"`      // N curves per replication
	DesignCount  int `yaml:"design_count"` // K target design points per curve
	BasisSize    int `yaml:"basis_size"`   // J
	TruncSize    int `yaml:"trunc_size"`   // J_trunc ≤ J for null calibration
	MCSamples    int `yaml:"mc_samples"`   // null-calibration draws
	EvalPoints   int `yaml:"eval_points"`  // integration nodes on [0,1]

	Sigma     float64      `yaml:"sigma"`
	Design    DesignPolicy `yaml:"design"`
	Noise     NoiseFamily  `yaml:"noise"`
	Bandwidth float64      `yaml:"bandwidth"` // kernel-smoothing bandwidth
	Sinusoid  Sinusoid     `yaml:"sinusoid"`  // nonzero-mean parameters
}

// Validate eagerly rejects invalid configurations before any simulation
// starts. A failure here is fatal to the whole run.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.ConfigInvalid("scenario name is required")
	}
	if c.Replications <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("replications must be positive, got %d", c.Replications))
	}
	if c.Samples <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("samples must be positive, got %d", c.Samples))
	}
	if c.DesignCount <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("design count must be positive, got %d", c.DesignCount))
	}
	if c.BasisSize <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("basis size must be positive, got %d", c.BasisSize))
	}
	if c.TruncSize <= 0 || c.TruncSize > c.BasisSize {
		return errors.ConfigInvalid(fmt.Sprintf("truncation size must be in 1..%d, got %d", c.BasisSize, c.TruncSize))
	}
	if c.MCSamples <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("MC samples must be positive, got %d", c.MCSamples))
	}
	if c.EvalPoints <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("evaluation points must be positive, got %d", c.EvalPoints))
	}
	if c.Sigma <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("noise sigma must be positive, got %g", c.Sigma))
	}
	if c.Bandwidth <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("bandwidth must be positive, got %g", c.Bandwidth))
	}
	switch c.Design {
	case DesignFixed, DesignPoisson:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown design policy %q", c.Design))
	}
	switch c.Noise {
	case NoiseNormal, NoiseStudentT:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown noise family %q", c.Noise))
	}
	return nil
}

// Combination identifies one estimator × reference-mean cell of a scenario.
type Combination struct {
	Estimator EstimatorKind
	Mean      MeanModel
}

// Label returns a stable human-readable name for the combination.
func (c Combination) Label() string {
	return fmt.Sprintf("%s/%s", c.Estimator, c.Mean)
}

// Combinations enumerates the four estimator × mean cells run per scenario.
func Combinations() []Combination {
	return []Combination{
		{Estimator: EstimatorInterpolating, Mean: MeanZero},
		{Estimator: EstimatorInterpolating, Mean: MeanSinusoidal},
		{Estimator: EstimatorKernel, Mean: MeanZero},
		{Estimator: EstimatorKernel, Mean: MeanSinusoidal},
	}
}

// ProbabilityLevels returns the standard coverage grid 0.00..1.00 step 0.01.
func ProbabilityLevels() []float64 {
	levels := make([]float64, 101)
	for i := range levels {
		levels[i] = float64(i) / 100
	}
	return levels
}

// Default returns a baseline scenario configuration matching the standard
// simulation setup.
func Default(name string) Config {
	return Config{
		Name:         name,
		Replications: 200,
		Samples:      50,
		DesignCount:  50,
		BasisSize:    100,
		TruncSize:    50,
		MCSamples:    10000,
		EvalPoints:   100,
		Sigma:        0.1,
		Design:       DesignFixed,
		Noise:        NoiseNormal,
		Bandwidth:    0.1,
		Sinusoid:     Sinusoid{Amplitude: 0.5, Frequency: 1, Phase: 0},
	}
}

// DefaultSuite returns the named scenarios exercising the standard knobs:
// noise level, design density, design distribution, and noise family.
func DefaultSuite() []Config {
	base := Default("baseline")

	lowNoise := Default("low-noise")
	lowNoise.Sigma = 0.01

	sparse := Default("sparse-design")
	sparse.DesignCount = 10

	poisson := Default("poisson-design")
	poisson.Design = DesignPoisson

	heavyTail := Default("student-t-noise")
	heavyTail.Noise = NoiseStudentT

	return []Config{base, lowNoise, sparse, poisson, heavyTail}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// suiteFile is the on-disk shape of a scenario suite.
type suiteFile struct {
	Scenarios []scenario.Config `yaml:"scenarios"`
}

// LoadSuite reads a YAML scenario suite and validates every entry before
// any simulation starts. Zero-valued fields fall back to the baseline
// defaults so suite files only need to spell out what they change.
func LoadSuite(path string) ([]scenario.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read scenario suite "+path)
	}

	var file suiteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "cannot parse scenario suite "+path)
	}
	if len(file.Scenarios) == 0 {
		return nil, errors.ConfigInvalid("scenario suite " + path + " defines no scenarios")
	}

	cfgs := make([]scenario.Config, 0, len(file.Scenarios))
	for _, cfg := range file.Scenarios {
		merged := applyDefaults(cfg)
		if err := merged.Validate(); err != nil {
			return nil, errors.Wrapf(err, "scenario %q", cfg.Name)
		}
		cfgs = append(cfgs, merged)
	}
	return cfgs, nil
}

func applyDefaults(cfg scenario.Config) scenario.Config {
	base := scenario.Default(cfg.Name)
	if cfg.Replications == 0 {
		cfg.Replications = base.Replications
	}
	if cfg.Samples == 0 {
		cfg.Samples = base.Samples
	}
	if cfg.DesignCount == 0 {
		cfg.DesignCount = base.DesignCount
	}
	if cfg.BasisSize == 0 {
		cfg.BasisSize = base.BasisSize
	}
	if cfg.TruncSize == 0 {
		cfg.TruncSize = base.TruncSize
	}
	if cfg.MCSamples == 0 {
		cfg.MCSamples = base.MCSamples
	}
	if cfg.EvalPoints == 0 {
		cfg.EvalPoints = base.EvalPoints
	}
	if cfg.Sigma == 0 {
		cfg.Sigma = base.Sigma
	}
	if cfg.Design == "" {
		cfg.Design = base.Design
	}
	if cfg.Noise == "" {
		cfg.Noise = base.Noise
	}
	if cfg.Bandwidth == 0 {
		cfg.Bandwidth = base.Bandwidth
	}
	if cfg.Sinusoid == (scenario.Sinusoid{}) {
		cfg.Sinusoid = base.Sinusoid
	}
	return cfg
}

// Package yaml loads the static keywords definition used for link
// classification.
package yaml

import (
	"fmt"
	"os"

	"github.com/webonehq/webone"
	"gopkg.in/yaml.v3"
)

// LoadClassifierConfig reads and validates a keywords definition file:
//
//	social_links:
//	  - linkedin
//	  - plus_google
//	inlink_threshold: 85
//
// A missing or malformed file is an error; callers treat it as fatal at
// process startup.
func LoadClassifierConfig(path string) (webone.ClassifierConfig, error) {
	var cfg webone.ClassifierConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read keywords file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse keywords file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

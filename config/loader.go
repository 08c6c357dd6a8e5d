package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable globals; absent sections leave the
// compiled defaults untouched.
type overrides struct {
	Window *WindowConfig `yaml:"window"`
	Catch  *CatchConfig  `yaml:"catch"`
	Runner *RunnerConfig `yaml:"runner"`
	Apple  *AppleConfig  `yaml:"apple"`
	Flight *FlightConfig `yaml:"flight"`
	Player *PlayerConfig `yaml:"player"`
	Vision *VisionConfig `yaml:"vision"`
	Sound  *SoundConfig  `yaml:"sound"`
}

// Load applies YAML overrides from path on top of the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Decoding into pointers at the current globals merges field-wise:
	// sections and fields absent from the file keep their defaults.
	o := overrides{
		Window: &C,
		Catch:  &Catch,
		Runner: &Runner,
		Apple:  &Apple,
		Flight: &Flight,
		Player: &Player,
		Vision: &Vision,
		Sound:  &Sound,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

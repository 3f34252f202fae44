package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentConfigVersion is written by `ecoquest config init`.
const CurrentConfigVersion = "1.0.0"

// supportedConfigVersions is the range of config_version values this build reads.
const supportedConfigVersions = ">= 1.0.0, < 2.0.0"

// Config version errors.
var (
	ErrInvalidConfigVersion     = errors.New("config_version is not a semantic version")
	ErrUnsupportedConfigVersion = errors.New("config_version is not supported")
)

// CheckConfigVersion accepts an empty version (treated as current) or one within
// the supported range.
func CheckConfigVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidConfigVersion, version)
	}
	constraint, err := semver.NewConstraint(supportedConfigVersions)
	if err != nil {
		return fmt.Errorf("parsing supported range: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedConfigVersion, v, supportedConfigVersions)
	}
	return nil
}

package graph

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Pack groups block definitions shipped together
type Pack struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// URL is the location the pack was loaded from, if any
	URL string `json:"-" yaml:"-"`
}

// SemVer parses the pack version, an empty version is 0.0.0
func (p *Pack) SemVer() (*semver.Version, error) {
	if p.Version == "" {
		return semver.NewVersion("0.0.0")
	}
	ret, err := semver.NewVersion(p.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid pack %v version %q: %w", p.Name, p.Version, err)
	}
	return ret, nil
}

// NewerThan returns true when p has a higher version than other
func (p *Pack) NewerThan(other *Pack) (bool, error) {
	current, err := p.SemVer()
	if err != nil {
		return false, err
	}
	if other == nil {
		return true, nil
	}
	previous, err := other.SemVer()
	if err != nil {
		return false, err
	}
	return current.GreaterThan(previous), nil
}

package graph

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestPack_NewerThan(t *testing.T) {
	testCases := []struct {
		description string
		pack        *Pack
		other       *Pack
		expected    bool
		shouldError bool
	}{
		{description: "no previous pack", pack: &Pack{Name: "core", Version: "1.0.0"}, expected: true},
		{description: "higher minor", pack: &Pack{Version: "1.2.0"}, other: &Pack{Version: "1.1.9"}, expected: true},
		{description: "same version", pack: &Pack{Version: "1.2.0"}, other: &Pack{Version: "v1.2.0"}, expected: false},
		{description: "empty version is lowest", pack: &Pack{}, other: &Pack{Version: "0.0.1"}, expected: false},
		{description: "invalid version", pack: &Pack{Version: "one"}, other: &Pack{Version: "1.0.0"}, shouldError: true},
	}
	for _, testCase := range testCases {
		actual, err := testCase.pack.NewerThan(testCase.other)
		if testCase.shouldError {
			tassert.Error(t, err, testCase.description)
			continue
		}
		tassert.NoError(t, err, testCase.description)
		tassert.Equal(t, testCase.expected, actual, testCase.description)
	}
}

func TestDefinition_SupportsPlatform(t *testing.T) {
	def := NewDefinition("a", "A", "")
	tassert.True(t, def.SupportsPlatform(PlatformWeb))
	def.Platforms = []Platform{PlatformNode}
	tassert.True(t, def.SupportsPlatform(PlatformAll))
	tassert.True(t, def.SupportsPlatform(PlatformNode))
	tassert.False(t, def.SupportsPlatform(PlatformWeb))
	def.Platforms = []Platform{PlatformAll}
	tassert.True(t, def.SupportsPlatform(PlatformElectron))
}

func TestPlatform_Known(t *testing.T) {
	testCases := []struct {
		description string
		platform    Platform
		expected    bool
	}{
		{description: "all", platform: PlatformAll, expected: true},
		{description: "node", platform: PlatformNode, expected: true},
		{description: "case sensitive", platform: "Web", expected: false},
		{description: "empty", platform: "", expected: false},
	}
	for _, testCase := range testCases {
		tassert.Equal(t, testCase.expected, testCase.platform.Known(), testCase.description)
	}
}

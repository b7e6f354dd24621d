// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	// Google Scholar serves an interstitial to clients without a
	// browser-like User-Agent, so the default mimics one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DiscoveryConfig holds settings for the discover stage.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the pause between records that hit the network
	// (default 2s, polite scraping).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// Keyword is an optional extra search term, typically the
	// institution name, appended to every profile query.
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`

	// MaxResults caps the number of verified candidate profiles kept
	// per faculty member (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Interactive enables confirmation and selection prompts. When
	// false, single candidates are auto-accepted and multiple
	// candidates are recorded as ambiguous and skipped.
	Interactive bool `json:"-" yaml:"-"`

	// ManualOnly skips automated search and goes straight to manual
	// ID entry.
	ManualOnly bool `json:"-" yaml:"-"`
}

// UpdateConfig holds settings for the update stage.
type UpdateConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the pause between metric fetches (default 1s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// Staleness is the freshness window: records refreshed within it
	// are skipped. Zero disables the check and refreshes everything.
	Staleness time.Duration `json:"staleness" yaml:"staleness"`
}

// ExtractConfig holds settings for the extract stage.
type ExtractConfig struct {
	// DocxPath is the Word document holding the faculty summaries.
	DocxPath string `json:"docx_path" yaml:"docx_path"`

	// AsOf, when set, is the ISO date stamped on extracted rows whose
	// metric line was found. Empty leaves as_of_date blank.
	AsOf string `json:"as_of,omitempty" yaml:"as_of,omitempty"`
}

// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package config

import (
	"fmt"
	"net/url"
)

// validateOrigin checks that a CORS origin is a bare scheme://host[:port].
func validateOrigin(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("cors origin %q failed to parse: %w", rawURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("cors origin %q scheme must be http or https", rawURL)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("cors origin %q host is required", rawURL)
	}

	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("cors origin %q must not contain a path", rawURL)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("cors origin %q must not contain query parameters", rawURL)
	}

	return nil
}

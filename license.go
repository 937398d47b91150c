package docgen

import (
	"fmt"

	"github.com/unidoc/unioffice/common/license"
)

// nolint gochecknoglobals
var (
	setMeteredKey = license.SetMeteredKey
	isLicensed    = func() bool { return license.GetLicenseKey().IsLicensed() }
)

// SetMeteredKey applies an unioffice metered license key, an empty key is a no-op.
// Once unioffice is licensed, word documents are serialized by unioffice.
func SetMeteredKey(key string) error {
	if key == "" {
		return nil
	}

	if err := setMeteredKey(key); err != nil {
		return fmt.Errorf("unioffice metered key: %w", err)
	}

	return nil
}

// Licensed tells whether unioffice holds a license.
func Licensed() bool { return isLicensed() }

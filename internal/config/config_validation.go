// SPDX-License-Identifier: Apache-2.0

package config

import "encoding/hex"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Required fields:
//   - App.TokenSignKey — session tokens cannot be issued without it;
//   - App.MasterKey — must decode to exactly 32 bytes of hex, otherwise
//     per-secret keys cannot be wrapped;
//   - Storage.DB.DSN — the service has no in-memory fallback.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	masterKey, err := hex.DecodeString(cfg.App.MasterKey)
	if err != nil || len(masterKey) != 32 {
		return ErrInvalidMasterKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

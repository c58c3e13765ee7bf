package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-fiveoclock/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyHeader,
		config.TKeyBoardEmpty,
		config.TKeyBoardError,
		config.TKeyStatusLine,
		config.TKeyMenuRefresh,
		config.TKeyTrayStatus,
		config.TKeyTrayStatusZero,
		config.TKeyNotifRefresh,
		config.TKeyNotifError,
		config.TKeyNotifSchedWarn,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			// Adjust path if running test from internal/ui or root
			name := "active." + lang + ".json"
			path := filepath.Join("locales", name)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				// Fallback for running tests from different CWD
				path = filepath.Join("..", "..", "internal", "ui", "locales", name)
				content, err = os.ReadFile(path)
			}
			require.NoError(t, err, "Must load %s", name)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			// Verify consistency
			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, name)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				_, exists := definedKeys[jsonKey]
				if !exists {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

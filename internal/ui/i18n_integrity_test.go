package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in every locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyMenuRefresh,
		config.TKeyMenuSettings,
		config.TKeyTrayScore,
		config.TKeyTrayIdle,
		config.TKeyObTitle,
		config.TKeyObSubtitle,
		config.TKeyLblName,
		config.TKeyLblBirthDate,
		config.TKeyLblBirthTime,
		config.TKeyHelpBirthDate,
		config.TKeyHelpBirthTime,
		config.TKeyBtnRegister,
		config.TKeyBtnImport,
		config.TKeyLblZodiac,
		config.TKeyLblStarSign,
		config.TKeyLblLuckyNumber,
		config.TKeyLblLuckyColor,
		config.TKeyLblScore,
		config.TKeyLblQuote,
		config.TKeyLblUpdated,
		config.TKeyBtnRefresh,
		config.TKeyBtnReset,
		config.TKeyConfirmReset,
		config.TKeyTierGreat,
		config.TKeyTierGood,
		config.TKeyTierSoSo,
		config.TKeyTierRough,
		config.TKeyLblWaiting,
		config.TKeyLblSettings,
		config.TKeyLblLanguage,
		config.TKeyLblAPIKey,
		config.TKeyHelpAPIKey,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyLblFooter,
		config.TKeyNotifArrived,
		config.TKeyNotifScore,
		config.TKeyErrConfig,
		config.TKeyErrFetch,
		config.TKeyErrMalformed,
		config.TKeyErrNameReq,
		config.TKeyErrDateReq,
		config.TKeyErrDateParse,
		config.TKeyErrTimeParse,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		filename := "active." + lang + ".json"

		// Adjust path if running test from internal/ui or root
		path := filepath.Join("locales", filename)
		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			// Fallback for running tests from different CWD
			path = filepath.Join("..", "..", "internal", "ui", "locales", filename)
			content, err = os.ReadFile(path)
		}
		require.NoErrorf(t, err, "Must load %s", filename)

		var jsonMap map[string]interface{}
		err = json.Unmarshal(content, &jsonMap)
		require.NoErrorf(t, err, "%s must be valid JSON", filename)

		// Verify consistency
		for key := range definedKeys {
			_, exists := jsonMap[key]
			assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, filename)
		}

		// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
		for jsonKey := range jsonMap {
			if strings.HasPrefix(jsonKey, "_") {
				continue
			}
			if !definedKeys[jsonKey] {
				t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, filename)
			}
		}
	}
}

package ui

import (
	"testing"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestSaveSettings_PersistsKeyAndLanguage(t *testing.T) {
	keyring.MockInit()

	app, _, _, _ := setupTestApp(t)
	app.setupTrayMenu()

	w := app.App.NewWindow("settings")
	sw := &settingsWidgets{
		langSelect: newTestSelect(app.SupportedLanguages, "en"),
		keyEntry:   newTestEntry("new-api-key"),
	}

	app.saveSettings(sw, w)

	// Language applies immediately.
	assert.Equal(t, "en", app.Preferences.String(config.PrefLanguage))
	assert.Equal(t, "Settings", app.GetMsg(config.TKeyMenuSettings))

	// The key lands in the keyring and in a freshly swapped client.
	stored, err := keyring.Get(config.KeyringService, config.KeyringAPIKeyAccount)
	require.NoError(t, err)
	assert.Equal(t, "new-api-key", stored)

	client, ok := app.currentClient().(*engine.GeminiClient)
	require.True(t, ok, "saving a key must swap in a real client")
	assert.Equal(t, "new-api-key", client.APIKey)
}

func TestSaveSettings_EmptyKeyKeepsClient(t *testing.T) {
	keyring.MockInit()

	app, client, _, _ := setupTestApp(t)
	app.setupTrayMenu()

	w := app.App.NewWindow("settings")
	sw := &settingsWidgets{
		langSelect: newTestSelect(app.SupportedLanguages, "ko"),
		keyEntry:   newTestEntry(""),
	}

	app.saveSettings(sw, w)

	// No key entered: the existing client stays in place.
	assert.Equal(t, client, app.currentClient())

	_, err := keyring.Get(config.KeyringService, config.KeyringAPIKeyAccount)
	assert.Error(t, err, "nothing should be written to the keyring")
}

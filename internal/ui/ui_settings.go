package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/zalando/go-keyring"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect *widget.Select
	keyEntry   *widget.Entry
}

// ShowSettingsWindow displays the configuration dialog. It implements a
// singleton pattern: if the window is already open, it requests focus.
func (app *DailyLuckApp) ShowSettingsWindow() {
	if app.settingsWin != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.settingsWin.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyLblSettings))
	app.settingsWin = w

	sw := &settingsWidgets{}

	// --- 1. Language ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	// --- 2. API Key ---
	sw.keyEntry = widget.NewPasswordEntry()
	// Pre-fill from secure storage only; an env-provided key stays in the env.
	if key, err := keyring.Get(config.KeyringService, config.KeyringAPIKeyAccount); err == nil {
		sw.keyEntry.SetText(key)
	}

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)

	itemKey := widget.NewFormItem(app.GetMsg(config.TKeyLblAPIKey), sw.keyEntry)
	itemKey.HintText = app.GetMsg(config.TKeyHelpAPIKey)

	form := widget.NewForm(itemLang, itemKey)

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		widget.NewCard(app.GetMsg(config.TKeyLblSettings), "", form),
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.SetFixedSize(true)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetOnClosed(func() { app.settingsWin = nil })
	w.Show()
}

// saveSettings persists the language choice and the API key, then applies
// both to the running application.
func (app *DailyLuckApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info("Saving preferences", config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.UpdateLocalizer()

	if sw.keyEntry.Text != "" {
		if err := keyring.Set(config.KeyringService, config.KeyringAPIKeyAccount, sw.keyEntry.Text); err != nil {
			slog.Error(config.ErrKeyringSave,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUISet)
			dialog.ShowError(err, w)
			return
		}
		app.SetClient(engine.NewGeminiClient(sw.keyEntry.Text))
	}

	app.RefreshTrayMenu()
	app.redrawCurrentView()

	w.Close()
}

// redrawCurrentView rebuilds the active main-window view so that label
// changes (language switch) take effect immediately.
func (app *DailyLuckApp) redrawCurrentView() {
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	if app.currentProfile() == nil {
		app.ShowOnboarding()
		return
	}
	app.ShowDashboard()
	app.updateTrayStatus(app.cachedFortune())
}

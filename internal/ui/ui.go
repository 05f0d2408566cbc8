package ui

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/stacieblesley-tech/dailyluck/internal/store"
)

// DailyLuckApp encapsulates the UI state, preferences, and background logic.
type DailyLuckApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store     *store.Store
	Client    engine.FortuneClient
	Clock     engine.Clock // Injected clock for testability (e.g. mocking time travel)
	Scheduler *engine.RefreshScheduler

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayRefreshItem  *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string

	// Registered state. Profile is immutable once set; Fortune is replaced
	// wholesale by each successful fetch.
	StateMut sync.RWMutex
	Profile  *engine.UserProfile
	Fortune  *engine.FortuneRecord

	dashboard   *dashboardWidgets
	settingsWin fyne.Window
	clientMut   sync.RWMutex
}

// NewDailyLuckApp constructs the application and wires dependencies.
func NewDailyLuckApp(a fyne.App, ctx context.Context, st *store.Store, client engine.FortuneClient) *DailyLuckApp {
	app := &DailyLuckApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              st,
		Client:             client,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}

	app.Scheduler = &engine.RefreshScheduler{
		Clock:   app.Clock,
		Cached:  app.cachedFortune,
		Refresh: func() { app.performUpdate(false) },
	}

	return app
}

// Run launches the application services and the main UI loop.
func (app *DailyLuckApp) Run() {
	app.SetupI18n()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window.SetMaster()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	app.restoreState()

	app.Window.Show()
	app.App.Run()
}

// restoreState reconstructs the startup state from the persisted store:
// a stored profile arms the scheduler and skips onboarding, anything else
// lands on the registration form.
func (app *DailyLuckApp) restoreState() {
	profile, fortune := app.Store.Restore()

	app.StateMut.Lock()
	app.Profile = profile
	app.Fortune = fortune
	app.StateMut.Unlock()

	if profile == nil {
		app.ShowOnboarding()
		app.updateTrayStatus(nil)
		return
	}

	app.ShowDashboard()
	app.updateTrayStatus(fortune)
	// The scheduler owns the "is a new fortune due" decision, including the
	// very first fetch after a restart.
	app.Scheduler.Clock = app.Clock
	app.Scheduler.Start(app.Ctx)
}

// Register completes onboarding: persists the profile, arms the scheduler,
// and triggers the immediate (non-scheduled) first fetch.
func (app *DailyLuckApp) Register(profile *engine.UserProfile) {
	slog.Info(config.MsgProfileSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyName, profile.Name,
		config.LogKeyDOB, profile.BirthDate.Format(config.DateFormatFullDash),
	)

	app.Store.SaveProfile(profile)

	app.StateMut.Lock()
	app.Profile = profile
	app.Fortune = nil
	app.StateMut.Unlock()

	app.ShowDashboard()
	app.Scheduler.Clock = app.Clock
	app.Scheduler.Start(app.Ctx)

	go app.performUpdate(true)
}

// Reset clears all persisted and in-memory state and returns to onboarding.
// An in-flight fetch is not cancelled; its late result is dropped because
// performUpdate re-reads the profile before persisting.
func (app *DailyLuckApp) Reset() {
	app.Scheduler.Stop()
	app.Store.Reset()

	app.StateMut.Lock()
	app.Profile = nil
	app.Fortune = nil
	app.StateMut.Unlock()

	app.ShowOnboarding()
	app.updateTrayStatus(nil)
}

// performUpdate executes the fetch pipeline. The daily due rule is not
// checked here: scheduled ticks arrive pre-filtered and manual refreshes
// bypass it by contract.
func (app *DailyLuckApp) performUpdate(manual bool) {
	slog.Info(config.MsgUpdateReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, manual)

	profile := app.currentProfile()
	if profile == nil {
		// Reset raced the scheduler; nothing to do.
		return
	}

	gen := &engine.Generator{
		Clock:  app.Clock,
		Client: app.currentClient(),
	}

	record, err := gen.FetchDaily(app.Ctx, profile)
	if err != nil {
		slog.Error(config.MsgUpdateFailed,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
		app.surfaceError(err)
		return
	}

	if app.currentProfile() == nil {
		// User reset while the fetch was in flight; ignore the result.
		return
	}

	app.Store.SaveFortune(record)

	app.StateMut.Lock()
	app.Fortune = record
	app.StateMut.Unlock()

	app.RefreshDashboard()
	app.updateTrayStatus(record)
	app.notifyArrival(record)
}

// notifyArrival raises a best-effort notification with the new score.
func (app *DailyLuckApp) notifyArrival(record *engine.FortuneRecord) {
	body, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyNotifScore,
		TemplateData: map[string]interface{}{"Score": record.OverallScore},
	})
	if err != nil {
		body = record.Date
	}
	app.App.SendNotification(fyne.NewNotification(app.GetMsg(config.TKeyNotifArrived), body))
}

// surfaceError maps an error to its localized, dismissible message. The
// dashboard keeps showing the last known-good record underneath.
func (app *DailyLuckApp) surfaceError(err error) {
	key := config.TKeyErrFetch
	switch {
	case errors.Is(err, engine.ErrConfigMissing):
		key = config.TKeyErrConfig
	case errors.Is(err, engine.ErrMalformedResponse):
		key = config.TKeyErrMalformed
	}

	dialog.ShowError(errors.New(app.GetMsg(key)), app.Window)
}

// setupTrayMenu constructs the system tray menu.
func (app *DailyLuckApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(app.GetMsg(config.TKeyTrayIdle), func() {
		app.Window.Show()
		app.Window.RequestFocus()
	})

	app.TrayRefreshItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), func() {
		go app.performUpdate(true)
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayRefreshItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *DailyLuckApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayRefreshItem.Label = app.GetMsg(config.TKeyMenuRefresh)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// updateTrayStatus shows today's score in the tray, or the idle label.
func (app *DailyLuckApp) updateTrayStatus(record *engine.FortuneRecord) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	label := app.GetMsg(config.TKeyTrayIdle)
	if record != nil {
		if msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyTrayScore,
			TemplateData: map[string]interface{}{"Score": record.OverallScore},
		}); err == nil {
			label = msg
		}
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// SetClient swaps the fortune client (settings saved a new API key).
func (app *DailyLuckApp) SetClient(client engine.FortuneClient) {
	app.clientMut.Lock()
	app.Client = client
	app.clientMut.Unlock()
}

func (app *DailyLuckApp) currentClient() engine.FortuneClient {
	app.clientMut.RLock()
	defer app.clientMut.RUnlock()
	return app.Client
}

func (app *DailyLuckApp) currentProfile() *engine.UserProfile {
	app.StateMut.RLock()
	defer app.StateMut.RUnlock()
	return app.Profile
}

// cachedFortune feeds the scheduler's due rule.
func (app *DailyLuckApp) cachedFortune() *engine.FortuneRecord {
	app.StateMut.RLock()
	defer app.StateMut.RUnlock()
	return app.Fortune
}

package ui

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
)

// onboardingWidgets holds references to form elements for validation on submit.
type onboardingWidgets struct {
	nameEntry *widget.Entry
	dateEntry *widget.Entry
	timeEntry *widget.Entry
}

// ShowOnboarding replaces the main window content with the registration form.
func (app *DailyLuckApp) ShowOnboarding() {
	ow := &onboardingWidgets{}

	title := widget.NewLabel(app.GetMsg(config.TKeyObTitle))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	subtitle := widget.NewLabel(app.GetMsg(config.TKeyObSubtitle))
	subtitle.Alignment = fyne.TextAlignCenter

	ow.nameEntry = widget.NewEntry()

	ow.dateEntry = widget.NewEntry()
	ow.dateEntry.PlaceHolder = config.DateFormatFullDash
	ow.dateEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrDateReq))
		}
		if _, err := engine.ParseBirthDate(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrDateParse))
		}
		return nil
	}

	ow.timeEntry = widget.NewEntry()
	ow.timeEntry.PlaceHolder = config.TimeFormatHM
	ow.timeEntry.Validator = func(s string) error {
		if s == "" {
			return nil // optional
		}
		if _, err := time.Parse(config.TimeFormatHM, s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrTimeParse))
		}
		return nil
	}

	itemName := widget.NewFormItem(app.GetMsg(config.TKeyLblName), ow.nameEntry)

	itemDate := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), ow.dateEntry)
	itemDate.HintText = app.GetMsg(config.TKeyHelpBirthDate)

	itemTime := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthTime), ow.timeEntry)
	itemTime.HintText = app.GetMsg(config.TKeyHelpBirthTime)

	form := widget.NewForm(itemName, itemDate, itemTime)

	btnImport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), func() {
		app.importFromVCard(ow)
	})

	btnRegister := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnRegister), theme.ConfirmIcon(), func() {
		app.submitRegistration(ow)
	})
	btnRegister.Importance = widget.HighImportance

	content := container.NewPadded(container.NewVBox(
		title,
		subtitle,
		widget.NewCard("", "", form),
		btnImport,
		btnRegister,
	))

	app.Window.SetContent(content)
}

// importFromVCard fills the form from the first contact with a birth date
// in a user-selected .vcf file.
func (app *DailyLuckApp) importFromVCard(ow *onboardingWidgets) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer func() { _ = r.Close() }()

		profile, err := engine.ImportProfile(r)
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			dialog.ShowError(err, app.Window)
			return
		}

		ow.nameEntry.SetText(profile.Name)
		ow.dateEntry.SetText(profile.BirthDate.Format(config.DateFormatFullDash))

		slog.Info(config.MsgProfileImported,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyName, profile.Name)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// submitRegistration validates the form and completes onboarding. The
// checks are repeated here rather than delegated to the entry validators
// so a submit is always gated, whatever state the widgets are in.
func (app *DailyLuckApp) submitRegistration(ow *onboardingWidgets) {
	if ow.nameEntry.Text == "" {
		dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrNameReq)), app.Window)
		return
	}
	if ow.dateEntry.Text == "" {
		dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrDateReq)), app.Window)
		return
	}

	birthDate, err := engine.ParseBirthDate(ow.dateEntry.Text)
	if err != nil {
		dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrDateParse)), app.Window)
		return
	}

	if ow.timeEntry.Text != "" {
		if _, err := time.Parse(config.TimeFormatHM, ow.timeEntry.Text); err != nil {
			dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrTimeParse)), app.Window)
			return
		}
	}

	app.Register(&engine.UserProfile{
		Name:         ow.nameEntry.Text,
		BirthDate:    birthDate,
		BirthTime:    ow.timeEntry.Text,
		IsRegistered: true,
	})
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"github.com/stacieblesley-tech/dailyluck/internal/engine"
)

// dashboardWidgets holds the mutable elements of the dashboard so that
// RefreshDashboard can update them in place after each fetch.
type dashboardWidgets struct {
	scoreLabel  *widget.Label
	tierLabel   *widget.Label
	signsLabel  *widget.Label
	zodiacText  *widget.Label
	starText    *widget.Label
	numberLabel *widget.Label
	colorLabel  *widget.Label
	quoteText   *widget.Label
	authorLabel *widget.Label
	updatedLbl  *widget.Label
}

// ShowDashboard replaces the main window content with the fortune dashboard
// and populates it from the current in-memory state.
func (app *DailyLuckApp) ShowDashboard() {
	dw := &dashboardWidgets{
		scoreLabel:  widget.NewLabel(""),
		tierLabel:   widget.NewLabel(""),
		signsLabel:  widget.NewLabel(""),
		zodiacText:  widget.NewLabel(""),
		starText:    widget.NewLabel(""),
		numberLabel: widget.NewLabel(""),
		colorLabel:  widget.NewLabel(""),
		quoteText:   widget.NewLabel(""),
		authorLabel: widget.NewLabel(""),
		updatedLbl:  widget.NewLabel(""),
	}

	dw.scoreLabel.Alignment = fyne.TextAlignCenter
	dw.scoreLabel.TextStyle = fyne.TextStyle{Bold: true}
	dw.tierLabel.Alignment = fyne.TextAlignCenter
	dw.signsLabel.Alignment = fyne.TextAlignCenter
	dw.zodiacText.Wrapping = fyne.TextWrapWord
	dw.starText.Wrapping = fyne.TextWrapWord
	dw.quoteText.Wrapping = fyne.TextWrapWord
	dw.quoteText.TextStyle = fyne.TextStyle{Italic: true}
	dw.authorLabel.Alignment = fyne.TextAlignTrailing
	dw.updatedLbl.Alignment = fyne.TextAlignCenter
	dw.updatedLbl.TextStyle = fyne.TextStyle{Monospace: true}

	luckyGrid := container.NewGridWithColumns(config.LayoutColumnsDouble,
		widget.NewCard(app.GetMsg(config.TKeyLblLuckyNumber), "", dw.numberLabel),
		widget.NewCard(app.GetMsg(config.TKeyLblLuckyColor), "", dw.colorLabel),
	)

	btnRefresh := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnRefresh), theme.ViewRefreshIcon(), func() {
		go app.performUpdate(true)
	})
	btnRefresh.Importance = widget.HighImportance

	btnReset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.DeleteIcon(), func() {
		dialog.ShowConfirm(app.GetMsg(config.TKeyBtnReset), app.GetMsg(config.TKeyConfirmReset),
			func(confirmed bool) {
				if confirmed {
					app.Reset()
				}
			}, app.Window)
	})

	content := container.NewVScroll(container.NewPadded(container.NewVBox(
		dw.scoreLabel,
		dw.tierLabel,
		dw.signsLabel,
		widget.NewCard(app.GetMsg(config.TKeyLblZodiac), "", dw.zodiacText),
		widget.NewCard(app.GetMsg(config.TKeyLblStarSign), "", dw.starText),
		luckyGrid,
		widget.NewCard(app.GetMsg(config.TKeyLblQuote), "", container.NewVBox(dw.quoteText, dw.authorLabel)),
		dw.updatedLbl,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnRefresh, btnReset),
	)))

	app.dashboard = dw
	app.Window.SetContent(content)

	app.RefreshDashboard()
}

// RefreshDashboard repaints the dashboard widgets from the cached record.
// Safe to call when the dashboard is not the active view.
func (app *DailyLuckApp) RefreshDashboard() {
	dw := app.dashboard
	if dw == nil {
		return
	}

	record := app.cachedFortune()
	if record == nil {
		dw.scoreLabel.SetText(app.GetMsg(config.TKeyLblWaiting))
		dw.tierLabel.SetText("")
		dw.signsLabel.SetText("")
		dw.zodiacText.SetText("")
		dw.starText.SetText("")
		dw.numberLabel.SetText("")
		dw.colorLabel.SetText("")
		dw.quoteText.SetText("")
		dw.authorLabel.SetText("")
		dw.updatedLbl.SetText("")
		return
	}

	dw.scoreLabel.SetText(fmt.Sprintf("%s: %d / %d",
		app.GetMsg(config.TKeyLblScore), record.OverallScore, config.MaxOverallScore))
	dw.tierLabel.SetText(app.GetMsg(scoreTierKey(record.OverallScore)))
	dw.signsLabel.SetText(fmt.Sprintf("%s · %s", record.ZodiacSign, record.StarSign))
	dw.zodiacText.SetText(record.ZodiacFortune)
	dw.starText.SetText(record.StarFortune)
	dw.numberLabel.SetText(record.LuckyNumber)
	dw.colorLabel.SetText(record.LuckyColor)
	dw.quoteText.SetText(record.DailyQuote)
	dw.authorLabel.SetText(record.QuoteAuthor)
	dw.updatedLbl.SetText(fmt.Sprintf("%s: %s",
		app.GetMsg(config.TKeyLblUpdated),
		record.LastUpdated.In(engine.ReferenceLocation()).Format("2006-01-02 15:04")))
}

// scoreTierKey maps a score to its mood translation key.
func scoreTierKey(score int) string {
	switch {
	case score >= config.ScoreTierGreat:
		return config.TKeyTierGreat
	case score >= config.ScoreTierGood:
		return config.TKeyTierGood
	case score >= config.ScoreTierSoSo:
		return config.TKeyTierSoSo
	default:
		return config.TKeyTierRough
	}
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-fiveoclock/internal/config"
	"github.com/tartampluch/go-fiveoclock/internal/engine"
)

// buildBoardWindow constructs the main window: a header line, the country
// board, and a status line showing when the board was last recomputed.
func (app *FiveOClockApp) buildBoardWindow() {
	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.BoardWinWidth, config.BoardWinHeight))

	app.header = widget.NewLabelWithStyle(app.headerText(app.loadOptions().TargetHour),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	app.statusLine = widget.NewLabelWithStyle("",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	// Monospace bold rows for a split-flap board feel.
	app.boardList = widget.NewList(
		func() int {
			app.BoardMut.RLock()
			defer app.BoardMut.RUnlock()
			return len(app.Board)
		},
		func() fyne.CanvasObject {
			return widget.NewLabelWithStyle(config.BoardPlaceholder,
				fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Monospace: true})
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			app.BoardMut.RLock()
			defer app.BoardMut.RUnlock()
			if id >= len(app.Board) {
				return
			}
			o.(*widget.Label).SetText(app.Board[id])
		},
	)

	app.Window.SetContent(container.NewBorder(app.header, app.statusLine, nil, nil, app.boardList))
}

// setBoardResults replaces the board content with a fresh resolution result.
// An empty result is a valid state and gets its own explicit row, distinct
// from the error row rendered by setBoardError.
func (app *FiveOClockApp) setBoardResults(res engine.Result, opts engine.Options) {
	rows := res.Countries
	if len(rows) == 0 {
		rows = []string{app.emptyBoardText(opts.TargetHour)}
	}

	app.BoardMut.Lock()
	app.Board = rows
	app.BoardMut.Unlock()

	app.header.SetText(app.headerText(opts.TargetHour))
	app.statusLine.SetText(app.statusLineText(res))
	app.boardList.Refresh()
}

// setBoardError renders the failure state so the user can tell it apart from
// "no countries match right now".
func (app *FiveOClockApp) setBoardError() {
	app.BoardMut.Lock()
	app.Board = []string{app.getMsgOr(config.TKeyBoardError, config.FallbackBoardError)}
	app.BoardMut.Unlock()

	app.boardList.Refresh()
}

// headerText builds the localized board title for the configured hour.
func (app *FiveOClockApp) headerText(targetHour int) string {
	face := clockFaceHour(targetHour)
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyHeader,
			TemplateData: map[string]interface{}{"Hour": face},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackHeader, face)
}

// emptyBoardText builds the localized "nothing matches" row.
func (app *FiveOClockApp) emptyBoardText(targetHour int) string {
	face := clockFaceHour(targetHour)
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyBoardEmpty,
			TemplateData: map[string]interface{}{"Hour": face},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackBoardEmpty, face)
}

// statusLineText formats the "Last updated" line from the instants the pass
// was computed at (local wall clock plus the matching UTC reading).
func (app *FiveOClockApp) statusLineText(res engine.Result) string {
	local := res.ComputedAt.Format(config.StatusTimeLayout)
	zone, _ := res.ComputedAt.Zone()
	utc := res.ComputedAtUTC.Format(config.StatusTimeLayout)

	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyStatusLine,
			TemplateData: map[string]interface{}{
				"Local": local,
				"Zone":  zone,
				"UTC":   utc,
			},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackStatusLine, local, zone, utc)
}

// getMsgOr translates a key, falling back to the given string when the key
// has no translation.
func (app *FiveOClockApp) getMsgOr(key, fallback string) string {
	if msg := app.GetMsg(key); msg != key {
		return msg
	}
	return fallback
}

// clockFaceHour converts a 24-hour value to the 1-12 clock-face hour used in
// user-facing text ("17" reads as "5 O'Clock").
func clockFaceHour(hour int) int {
	face := hour % config.HoursOnClockFace
	if face == 0 {
		face = config.HoursOnClockFace
	}
	return face
}

package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-fiveoclock/internal/config"
	"github.com/tartampluch/go-fiveoclock/internal/engine"
	"github.com/tartampluch/go-fiveoclock/internal/server"
)

//go:embed Icon.png
var appIconData []byte

// FiveOClockApp encapsulates the UI state, preferences, and background logic.
type FiveOClockApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server   *server.FeedServer
	Resolver *engine.Resolver
	Clock    engine.Clock // Injected clock for testability (e.g. mocking time travel)

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem  *fyne.MenuItem
	TrayRefreshItem *fyne.MenuItem

	SupportedLanguages []string

	// Board State
	BoardMut sync.RWMutex
	Board    []string

	boardList  *widget.List
	header     *widget.Label
	statusLine *widget.Label
}

// NewFiveOClockApp constructs the application and wires dependencies.
func NewFiveOClockApp(a fyne.App, ctx context.Context, srv *server.FeedServer, db engine.ZoneDatabase) *FiveOClockApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &FiveOClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Resolver:           &engine.Resolver{DB: db},
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		Board:              make([]string, 0),
	}
}

// Run launches the application services and the main UI loop.
func (app *FiveOClockApp) Run() {
	app.SetupI18n()
	app.buildBoardWindow()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	go app.runScheduler()

	app.Window.Show()
	app.App.Run()
}

// runScheduler drives the hour-aligned refresh cycle until shutdown.
// The first refresh happens immediately inside Scheduler.Run.
func (app *FiveOClockApp) runScheduler() {
	sched := &engine.Scheduler{
		Clock: app.Clock,
		OnError: func(err error) {
			// A failed pass must not kill the cycle; warn and keep going.
			app.App.SendNotification(fyne.NewNotification(
				config.TitleSchedWarning,
				app.GetMsg(config.TKeyNotifSchedWarn)))
		},
	}
	sched.Run(app.Ctx, func(now time.Time) {
		app.refreshAt(now, false)
	})
}

// setupTrayMenu constructs the system tray menu.
func (app *FiveOClockApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.Window.Show()
		app.Window.RequestFocus()
	})

	app.TrayRefreshItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), func() {
		go app.performRefresh(true)
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayRefreshItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// performRefresh is the manual "Refresh Now" entry point. It reads a fresh
// instant and resolves immediately; the scheduler's pending hour-boundary
// timer is deliberately left untouched.
func (app *FiveOClockApp) performRefresh(manual bool) {
	app.refreshAt(app.Clock.Now(), manual)
}

// refreshAt executes one resolution pass for the given instant and pushes the
// outcome to the board, the tray, and the feed server.
func (app *FiveOClockApp) refreshAt(now time.Time, manual bool) {
	opts := app.loadOptions()

	slog.Info(config.MsgRefreshReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, manual,
		config.LogKeyHour, opts.TargetHour,
		config.LogKeyExact, opts.ExactHour)

	res, err := app.Resolver.Resolve(now, opts)
	if err != nil {
		slog.Error(config.ErrResolveFailed,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
		app.setBoardError()
		app.updateTrayStatus(-1)
		if manual {
			app.App.SendNotification(fyne.NewNotification(
				config.TitleRefreshError, app.GetMsg(config.TKeyNotifError)))
		}
		return
	}

	app.setBoardResults(res, opts)
	app.updateTrayStatus(len(res.Countries))

	if feed, ferr := engine.BuildFeed(res, opts); ferr == nil {
		app.Server.Update(feed)
	} else {
		slog.Error(config.ErrICalEncode,
			config.LogKeyError, ferr,
			config.LogKeyComponent, config.CompUI)
	}

	if manual {
		app.App.SendNotification(fyne.NewNotification(
			config.AppName, app.GetMsg(config.TKeyNotifRefresh)))
	}
}

// updateTrayStatus updates the top menu item with the current country count.
func (app *FiveOClockApp) updateTrayStatus(count int) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	var label string
	if count < 0 {
		label = config.FallbackTrayError
	} else if count == 0 {
		label = app.GetMsg(config.TKeyTrayStatusZero)
		if label == config.TKeyTrayStatusZero {
			label = fmt.Sprintf(config.FallbackTrayDefault, 0)
		}
	} else {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyTrayStatus,
				TemplateData: map[string]interface{}{"Count": count},
				PluralCount:  count,
			})
			if err == nil {
				label = msg
			}
		}
		if label == "" {
			label = fmt.Sprintf(config.FallbackTrayDefault, count)
		}
	}

	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}

// loadOptions assembles the resolution options from UI preferences.
// Read on every pass, so a changed preference takes effect at the next
// refresh without restarting anything.
func (app *FiveOClockApp) loadOptions() engine.Options {
	return engine.Options{
		TargetHour: app.Preferences.IntWithFallback(config.PrefTargetHour, config.DefaultTargetHour),
		ExactHour:  app.Preferences.Bool(config.PrefExactHour),
	}
}

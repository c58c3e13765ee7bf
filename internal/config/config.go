package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Five O'Clock"
	AppID             = "com.github.tartampluch.go-fiveoclock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagHour        = "hour"
	FlagExact       = "exact"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescHour    = "Target local hour (0-23); overrides the stored preference"
	FlagDescExact   = "Only match zones exactly at the top of the hour"

	MsgVersionOutput = "%s version %s (%s/%s)\n"

	// FlagHourUnset marks the -hour flag as "not provided".
	FlagHourUnset = -1
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	BoardWinWidth  = 640
	BoardWinHeight = 480

	// Preference Keys
	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefTargetHour = "target_hour"
	PrefExactHour  = "exact_hour"
	PrefLastRun    = "last_run_version"

	BoardPlaceholder = "Country Name"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyHeader         = "header"      // Requires Hour (clock-face hour, 1-12)
	TKeyBoardEmpty     = "board_empty" // Requires Hour
	TKeyBoardError     = "board_error" // Rendered instead of results on failure
	TKeyStatusLine     = "status_line" // Requires Local, Zone, UTC
	TKeyMenuRefresh    = "menu_refresh"
	TKeyTrayStatus     = "tray_status"      // Requires Count > 0
	TKeyTrayStatusZero = "tray_status_zero" // Explicit key for 0
	TKeyNotifRefresh   = "notif_refresh_done"
	TKeyNotifError     = "notif_refresh_err"
	TKeyNotifSchedWarn = "notif_sched_warn"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort       = "18090"
	DefaultLanguage   = "en"
	DefaultTargetHour = 17 // 5 PM, the whole point of the application
	MinTargetHour     = 0
	MaxTargetHour     = 23
	HoursOnClockFace  = 12
)

// -----------------------------------------------------------------------------
// Standards: iCalendar Feed
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Five O'Clock//Engine//EN"
	ICalCalName = "Happy Hour"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gofiveoclock"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultFeedRefresh = 1 * time.Hour

	// Feed formatting
	FormatFeedUID     = "%s@%s"
	FeedUIDTimeLayout = "20060102T150405Z"
	FormatFeedSummary = "It's %d o'clock somewhere: %d countries"
	FeedListSeparator = ", "
	FeedEmptyBody     = "No countries in the target hour right now."
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrZoneTableLoad    = "failed to read the zone table"
	ErrZoneTableFormat  = "malformed zone table row"
	ErrZoneTableEmpty   = "zone table contains no zones"
	ErrHourRange        = "target hour out of range 0-23"
	ErrResolveFailed    = "resolution pass failed"
	ErrNoZones          = "zone database enumerates no timezones"
	ErrRefreshPanic     = "refresh callback panicked"
	ErrICalEncode       = "failed to encode feed data"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrDatabaseLoad     = "timezone database failed to load"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackTrayError   = "Go Five O'Clock: Refresh Error"
	FallbackTrayDefault = "Go Five O'Clock (%d countries)"
	FallbackTrayLabel   = "Go Five O'Clock"
	FallbackHeader      = "It's %d O'Clock in:"
	FallbackBoardEmpty  = "NO COUNTRIES AT %d O'CLOCK RIGHT NOW"
	FallbackBoardError  = "RESOLUTION FAILED - CHECK LOGS"
	FallbackStatusLine  = "Last updated: %s %s · UTC %s"

	StatusTimeLayout = "2006-01-02 15:04:05"

	TitleStartupError = "Startup Error"
	TitleRefreshError = "Refresh Error"
	TitleSchedWarning = "Scheduler Warning"

	MsgPortBusy       = "Port %s is busy or unavailable."
	MsgRefreshReq     = "Refresh requested"
	MsgResolveDone    = "Resolution pass finished"
	MsgZoneSkipped    = "Skipping unresolvable timezone"
	MsgSchedulerStart = "Hour-boundary scheduler started"
	MsgSchedulerStop  = "Scheduler stopping due to context cancellation"
	MsgBoundaryArmed  = "Next hour boundary armed"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Feed cache updated"
	MsgDatabaseReady  = "Timezone database loaded"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyHour      = "hour"
	LogKeyExact     = "exact"
	LogKeyManual    = "manual"
	LogKeyZone      = "zone"
	LogKeyZones     = "zones_total"
	LogKeyMatched   = "zones_matched"
	LogKeySkipped   = "zones_skipped"
	LogKeyCountries = "countries"
	LogKeyNextFire  = "next_fire"
	LogKeyDelayMS   = "delay_ms"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyCount     = "count"
	LogKeyDuration  = "duration_ms"
	LogKeyStats     = "stats"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompEngine    = "engine"
	CompScheduler = "scheduler"
	CompTZDB      = "tzdb"
	CompServer    = "server"
	CompMain      = "main"
	CompI18n      = "i18n"
)

package config

import "time"

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
	AppName   = "Next Birthday API"
	EnvPrefix = "NEXTBIRTHDAY"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagHost        = "host"
	FlagPort        = "port"
	FlagDebug       = "debug"
	FlagVersion     = "version"
	FlagCORSOrigins = "cors-origins"

	FlagDescHost    = "Listen address"
	FlagDescPort    = "Listen port"
	FlagDescDebug   = "Enable debug logging"
	FlagDescVersion = "Show application version and exit"
	FlagDescCORS    = "Allowed CORS origins"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 8080
	DefaultCORSOrigin = "*"
	DefaultLanguage   = "en"
	DefaultLeapYear   = 2000 // Leap year fallback for vCard dates like --02-29

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// Routes & Parameters
// -----------------------------------------------------------------------------

const (
	RouteNextBirthday    = "/api/nextbirthday"
	RouteNextBirthdayICS = "/api/nextbirthday.ics"
	RouteAge             = "/api/age"
	RouteVCardScan       = "/api/vcard"
	RouteHealth          = "/healthz"

	ParamDOB = "dob"

	// ExampleUsage is echoed in every error body so callers can self-correct.
	ExampleUsage = "/api/nextbirthday?dob=YYYY-MM-DD"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RequestTimeout     = 15 * time.Second
	CORSMaxAgeSeconds  = 300

	// MaxVCardBodySize bounds the POST /api/vcard request body.
	MaxVCardBodySize = 8 * 1024 * 1024 // 8MB

	MinPort       = 1
	MaxPort       = 65535
	AddrSeparator = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType    = "Content-Type"
	HeaderXContentType   = "X-Content-Type-Options"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderAccept         = "Accept"

	MimeJSON         = "application/json; charset=utf-8"
	MimeTextCalendar = "text/calendar; charset=utf-8"
	MimeNoSniff      = "nosniff"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Next Birthday API//Engine//EN"
	ICalCalName = "Next Birthday"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "nextbirthday"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats & UID Generation
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the only layout accepted for the dob parameter.
	DateFormatISO = "2006-01-02"

	// Date layouts accepted for vCard BDAY properties (RFC 6350 allows several).
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	UIDSalt         = "go-nextbirthday-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// FormatICalSummary expects the age being turned.
	FormatICalSummary = "Birthday (turns %d)"
)

// -----------------------------------------------------------------------------
// Validation Messages (User-Facing)
// -----------------------------------------------------------------------------

const (
	MsgDOBMissing   = "Missing required parameter 'dob'"
	MsgDOBMalformed = "Invalid date format. Expected YYYY-MM-DD"
	MsgDOBInvalid   = "Invalid date. Please provide a valid date"
	MsgDOBFuture    = "Date of birth cannot be in the future"
)

// -----------------------------------------------------------------------------
// Countdown Messages (Built-In English Templates)
// -----------------------------------------------------------------------------

const (
	MsgTierToday    = "🎉 Happy Birthday! It's your special day!"
	MsgTierTomorrow = "🎂 Your birthday is tomorrow! Get ready to celebrate!"
	MsgTierWeek     = "🎈 Your birthday is in %d days! The countdown begins!"
	MsgTierMonth    = "🗓️ Your birthday is in %d days. Mark your calendar!"
	MsgTierQuarter  = "⏰ Your birthday is in %d days. Time to start planning!"
	MsgTierBeyond   = "📅 Your birthday is in %d days. Plenty of time to prepare!"

	// MsgAgeSummary expects the age in whole years.
	MsgAgeSummary = "You are %d years old!"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyMsgToday    = "msg_today"
	TKeyMsgTomorrow = "msg_tomorrow"
	TKeyMsgWeek     = "msg_week"
	TKeyMsgMonth    = "msg_month"
	TKeyMsgQuarter  = "msg_quarter"
	TKeyMsgBeyond   = "msg_beyond"
	TKeyMsgAge      = "msg_age"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrPanicRecovered = "panic recovered while serving request"
	ErrBindFlags      = "failed to bind command line flags"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInternalErr = "Internal server error"
	HTTPStatusOK       = "ok"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgRequestServed = "Request served"
	MsgSkippedDate   = "Skipping invalid BDAY value"
	MsgSkippedFuture = "Skipping future BDAY value"
	MsgScanDone      = "vCard scan completed"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyHost      = "host"
	LogKeyPort      = "port"
	LogKeyMethod    = "method"
	LogKeyPath      = "path"
	LogKeyStatus    = "status_code"
	LogKeyDuration  = "duration_ms"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyDOB       = "date_of_birth"
	LogKeyScanned   = "cards_scanned"
	LogKeyMatched   = "birthdays_found"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Component Names (Logging)
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompEngine = "engine"
	CompServer = "server"
	CompI18n   = "i18n"
)

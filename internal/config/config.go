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
	AppName        = "Daily Luck"
	AppID          = "tech.stacieblesley.dailyluck"
	KeyringService = "tech.stacieblesley.dailyluck"
	LogFileName    = "app.log"
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
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Reference Calendar (KST)
// -----------------------------------------------------------------------------

const (
	// ReferenceZoneName labels the fixed UTC+9 zone used for all daily logic.
	// The zone is always derived from UTC, never from the host locale.
	ReferenceZoneName = "KST"

	// ReferenceUTCOffsetHours is the fixed offset of the reference zone.
	ReferenceUTCOffsetHours = 9

	// DailyThresholdHour is the local hour (inclusive) after which a new
	// day's fortune becomes fetchable.
	DailyThresholdHour = 9

	// DateKeyFormat is the canonical YYYY-MM-DD key identifying a fortune day.
	DateKeyFormat = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Scheduler
// -----------------------------------------------------------------------------

const (
	// SchedulerInterval is the wall-clock cadence of the daily refresh check.
	SchedulerInterval = 60 * time.Second
)

// -----------------------------------------------------------------------------
// Gemini Service
// -----------------------------------------------------------------------------

const (
	GeminiModel   = "gemini-3-flash-preview"
	GeminiTimeout = 30 * time.Second

	// EnvAPIKey is consulted before the OS keyring.
	EnvAPIKey = "GEMINI_API_KEY"

	// KeyringAPIKeyAccount is the keyring account name storing the API key.
	KeyringAPIKeyAccount = "gemini_api_key"

	// Response schema field names. All seven are mandatory in the response.
	FieldZodiacFortune = "zodiacFortune"
	FieldStarFortune   = "starFortune"
	FieldLuckyNumber   = "luckyNumber"
	FieldLuckyColor    = "luckyColor"
	FieldOverallScore  = "overallScore"
	FieldDailyQuote    = "dailyQuote"
	FieldQuoteAuthor   = "quoteAuthor"
)

// PromptTemplate builds the Korean fortune request. Arguments: today's date
// key, user name, birth date, zodiac animal, star sign.
const PromptTemplate = `오늘의 날짜: %s
사용자 정보: 이름 %s, 생년월일 %s
사용자의 띠: %s
사용자의 별자리: %s

위 정보를 바탕으로 한국어로 다음을 작성해줘:
1. 오늘의 띠별 운세와 별자리 운세 (상세하고 희망차게)
2. 행운의 숫자(1-99)와 행운의 색상
3. 전체적인 운세 점수 (0-100점 사이 숫자만)
4. 오늘의 사용자에게 어울리는 명언과 저자`

// -----------------------------------------------------------------------------
// Score & Content Bounds
// -----------------------------------------------------------------------------

const (
	MinOverallScore = 0
	MaxOverallScore = 100

	// Score tiers drive the dashboard mood display.
	ScoreTierGreat = 80
	ScoreTierGood  = 60
	ScoreTierSoSo  = 40
)

// -----------------------------------------------------------------------------
// Persisted State (local key-value store)
// -----------------------------------------------------------------------------

const (
	StoreKeyProfile = "user_profile"
	StoreKeyFortune = "last_fortune"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 420
	MainWindowHeight = 640

	SettingsWindowWidth = 520

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"ko", "en"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyMenuRefresh  = "menu_refresh"
	TKeyMenuSettings = "menu_settings"
	TKeyTrayScore    = "tray_score" // Requires Score
	TKeyTrayIdle     = "tray_idle"

	// Onboarding
	TKeyObTitle       = "ob_title"
	TKeyObSubtitle    = "ob_subtitle"
	TKeyLblName       = "lbl_name"
	TKeyLblBirthDate  = "lbl_birth_date"
	TKeyLblBirthTime  = "lbl_birth_time"
	TKeyHelpBirthDate = "help_birth_date"
	TKeyHelpBirthTime = "help_birth_time"
	TKeyBtnRegister   = "btn_register"
	TKeyBtnImport     = "btn_import"

	// Dashboard
	TKeyLblZodiac      = "lbl_zodiac"
	TKeyLblStarSign    = "lbl_star_sign"
	TKeyLblLuckyNumber = "lbl_lucky_number"
	TKeyLblLuckyColor  = "lbl_lucky_color"
	TKeyLblScore       = "lbl_score"
	TKeyLblQuote       = "lbl_quote"
	TKeyLblUpdated     = "lbl_updated"
	TKeyBtnRefresh     = "btn_refresh"
	TKeyBtnReset       = "btn_reset"
	TKeyConfirmReset   = "confirm_reset"
	TKeyTierGreat      = "tier_great"
	TKeyTierGood       = "tier_good"
	TKeyTierSoSo       = "tier_soso"
	TKeyTierRough      = "tier_rough"
	TKeyLblWaiting     = "lbl_waiting"

	// Settings
	TKeyLblSettings = "lbl_settings"
	TKeyLblLanguage = "lbl_language"
	TKeyLblAPIKey   = "lbl_api_key"
	TKeyHelpAPIKey  = "help_api_key"
	TKeyBtnSave     = "btn_save"
	TKeyBtnCancel   = "btn_cancel"
	TKeyLblFooter   = "lbl_footer"

	// Notifications
	TKeyNotifArrived = "notif_arrived"       // Title
	TKeyNotifScore   = "notif_arrived_score" // Requires Score

	// Surfaced errors (dismissible)
	TKeyErrConfig    = "err_config_missing"
	TKeyErrFetch     = "err_fetch_failed"
	TKeyErrMalformed = "err_malformed_response"

	// Validation Errors (UI)
	TKeyErrNameReq   = "err_name_required"
	TKeyErrDateReq   = "err_date_required"
	TKeyErrDateParse = "err_date_invalid"
	TKeyErrTimeParse = "err_time_invalid"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "ko"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted for birth dates (UI entry and vCard BDAY).
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Birth time layout (optional field).
	TimeFormatHM = "15:04"

	// vCard fields read during profile import.
	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	// File Extensions accepted by the import dialog.
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAPIKeyMissing     = "configuration error: no Gemini API key available"
	ErrFetchFailed       = "fortune service request failed"
	ErrMalformedResponse = "fortune service returned a malformed response"
	ErrCorruptState      = "persisted state is corrupt"
	ErrNotRegistered     = "profile is not registered"
	ErrNameEmpty         = "profile name is empty"
	ErrBirthDateZero     = "profile birth date is not set"
	ErrDateParse         = "unable to parse date"
	ErrNoBirthDateCard   = "no contact with a birth date found in vCard stream"
	ErrEmptyResponse     = "empty response text"
	ErrScoreOutOfRange   = "overall score out of range"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrTrayNotSupported  = "system tray not supported on this platform/driver"
	ErrKeyringSave       = "failed to save API key to keyring"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgUpdateReq       = "Fortune update requested"
	MsgUpdateStarted   = "Fortune update started..."
	MsgUpdateSuccess   = "Fortune updated"
	MsgUpdateFailed    = "Fortune update failed"
	MsgSchedDue        = "Daily refresh due"
	MsgSchedStart      = "Refresh scheduler armed"
	MsgSchedStop       = "Refresh scheduler stopped"
	MsgProfileSaved    = "Profile registered"
	MsgProfileImported = "Profile imported from vCard"
	MsgStateReset      = "Persisted state cleared, returning to onboarding"
	MsgStateCorrupt    = "Discarding corrupt persisted state"
	MsgStateRestored   = "Persisted state restored"
	MsgGeminiCall      = "Calling fortune service"
	MsgGeminiDone      = "Fortune service call completed"
	MsgKeyFromEnv      = "API key resolved from environment"
	MsgKeyFromKeyring  = "API key resolved from keyring"
	MsgKeyMissing      = "No API key found (env or keyring)"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid date format"
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
	LogKeyManual    = "manual"
	LogKeyName      = "name"
	LogKeyDOB       = "birth_date"
	LogKeyDateKey   = "date_key"
	LogKeyZodiac    = "zodiac"
	LogKeyStarSign  = "star_sign"
	LogKeyScore     = "score"
	LogKeyModel     = "model"
	LogKeyDuration  = "duration_ms"
	LogKeyInterval  = "interval"
	LogKeySource    = "source"
	LogKeyCached    = "cached_date"

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
	CompUISet     = "ui_settings"
	CompEngine    = "engine"
	CompScheduler = "scheduler"
	CompStore     = "store"
	CompGemini    = "gemini"
	CompMain      = "main"
	CompI18n      = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)

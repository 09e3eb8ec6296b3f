package constants

const (
	AppName            = "trainlog"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/trainlog/trainlog.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the schedule key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock format used for settings (HH:MM)
	TimeFormat = "15:04"

	// MonthFormat is accepted by the calendar command (YYYY-MM)
	MonthFormat = "2006-01"

	// Settings defaults
	DefaultTimezone             = "Local"
	DefaultReminderTime         = "06:30"
	DefaultNotificationsEnabled = false

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "trainlog-"
	BackupFileSuffix = ".db"

	// Notifier constants
	TrayAppIdentifier      = "com.julianstephens.trainlog-tray"
	TrayAppExecutable      = "trainlog-tray"
	NotifierLockfileName   = "trainlog-tray.lock"
	NotifierSecretHeader   = "X-Trainlog-Secret"
	NotificationDurationMs = 8000
)

package constants

const (
	// AppName is used for config paths, keyring service names, and log prefixes
	AppName = "habitflow"

	// DateFormat is the canonical YYYY-MM-DD day key format
	DateFormat = "2006-01-02"

	// TimeFormat is the HH:MM format used for reminder times
	TimeFormat = "15:04"

	// StorageKey is the single document key under which all data is stored
	StorageKey = "habitflow_data"

	// DataVersion is stamped on every saved document
	DataVersion = "1.0.0"

	// DefaultDataPath is the default storage location. A directory means
	// file-backed blobs; a .db path selects the SQLite backend.
	DefaultDataPath = "~/.config/habitflow"

	// StreakWalkLimit bounds the walk-backward streak scan
	StreakWalkLimit = 365

	// DefaultEpoch is the fallback start date for habits without one
	DefaultEpoch = "2025-01-01"
)

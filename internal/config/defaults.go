package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultConfigFile is the default YAML config file name
	DefaultConfigFile = "fpt.yaml"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "fpt-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultTraceDepth is the default number of frames shown under a failure
	DefaultTraceDepth = 1
	// DefaultHistoryLimit is the default number of runs listed by history
	DefaultHistoryLimit = 10
	// DefaultSQLiteFile is the history database used when the sqlite3 driver has no DSN
	DefaultSQLiteFile = "fpt-history.db"
)

// Supported history drivers
const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

// DefaultHideFrames are frame patterns always dropped from excerpts. They
// cover standard library code that calls back into lesson functions.
var DefaultHideFrames = []string{
	"reflect.",
	"sort.",
	"slices.",
}

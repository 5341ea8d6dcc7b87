package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the test root, relative to the project
	DefaultTestPath = "tests"
	// DefaultConfigFile is the settings file name
	DefaultConfigFile = "xrun.yaml"
	// DefaultEnvFile is the optional environment file name
	DefaultEnvFile = ".env"
	// DefaultMarkerFile is written before every run
	DefaultMarkerFile = ".testsrunning"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "xrun-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultExtension is the test source file extension
	DefaultExtension = ".go"
	// DefaultNamespace prefixes every test-case identifier
	DefaultNamespace = "tests"
)

// Recognized settings
const (
	SettingDebug         = "debug"
	SettingTestDirectory = "test-directory"
	SettingIgnore        = "ignore"
	SettingHistoryDSN    = "history-dsn"
)

// envOverrides maps environment variables to the settings they override
var envOverrides = map[string]string{
	"XRUN_DEBUG":          SettingDebug,
	"XRUN_TEST_DIRECTORY": SettingTestDirectory,
	"XRUN_HISTORY_DSN":    SettingHistoryDSN,
}

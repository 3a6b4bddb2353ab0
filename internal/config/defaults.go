package config

const (
	// DefaultWorkDir is the default directory packages are loaded from
	DefaultWorkDir = "."
	// DefaultOutputFile is the default saved request file name
	DefaultOutputFile = "discovery-request.json"
	// DefaultOutputDir is the default directory for saved requests
	DefaultOutputDir = ".gtl"
	// DefaultProcessors is the default number of resolution workers
	DefaultProcessors = 1
	// DefaultFormat is the default output format of the discover command
	DefaultFormat = FormatText
	// ConfigFileName is the config file name, without extension
	ConfigFileName = "gtl"
	// EnvPrefix prefixes every environment variable read by the config
	EnvPrefix = "GTL"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"testdata",
	"node_modules",
}

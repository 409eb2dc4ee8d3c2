package cli

import (
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// Flags represents command line flags
type Flags struct {
	Version        bool         `short:"v" long:"version"        description:"Print the program version"`
	LogLevel       logrus.Level `short:"l" long:"logLevel"       description:"Logging level. Can be from 0 (least verbose) to 6 (most verbose)"`
	ProgramCfgPath string       `short:"c" long:"programCfgPath" description:"Program config file path to read from or initialize a default"`
	NamesPath      string       `short:"n" long:"namesPath"      description:"File path to get raw firm names from, one per line. Can be a local file or URL"`
	TableURL       string       `short:"t" long:"tableURL"       description:"HTML page to get a table from. Can be a local file or URL"`
	TableIndex     int          `short:"i" long:"tableIndex"     description:"0-based index of the table on the page"`
	SP500          bool         `long:"sp500"                    description:"Get the table of S&P 500 constituents from the URL set in config"`
	StripColumn    string       `short:"s" long:"stripColumn"    description:"Table column with firm names to add a stripped copy of"`
	Wait           int          `short:"w" long:"wait"           description:"Amount of seconds to wait before fetching"`
}

// Parse returns a structure initialized with command line arguments and error if parsing failed
func Parse() (Flags, error) {
	flags := Flags{
		// Set defaults
		LogLevel:       logrus.InfoLevel,
		ProgramCfgPath: "ds_helper.yaml",
	}
	parser := goFlags.NewParser(&flags, goFlags.Options(goFlags.Default))
	_, err := parser.Parse()
	return flags, errors.Wrap(err, "Parse CLI arguments")
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}

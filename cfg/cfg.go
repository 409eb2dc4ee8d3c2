package cfg

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

//go:embed default.yaml
var defCfgBytes []byte

// Root represents root settings of the program
type Root struct {
	Export    Export    `koanf:"export"`
	Fetch     Fetch     `koanf:"fetch"`
	Firm      Firm      `koanf:"firm"`
	Countdown Countdown `koanf:"countdown"`
}

// Export represents output file settings
type Export struct {
	// DataDir represents directory to write output files to
	DataDir string `koanf:"data_dir"`

	// Format represents output file format: csv, xlsx or json
	Format string `koanf:"format"`

	// Header specifies if column names should be written as the first row
	Header bool `koanf:"header"`

	// Index specifies if 0-based row number column should be prepended
	Index bool `koanf:"index"`

	// Append specifies if rows should be appended to existing output file
	Append bool `koanf:"append"`
}

// Fetch represents remote sources settings
type Fetch struct {
	// RespTimeout represents amount of time to wait for HTML page or names list to respond
	RespTimeout time.Duration `koanf:"resp_timeout"`

	// SP500URL represents page with the table of S&P 500 constituents
	SP500URL string `koanf:"sp500_url"`

	// UserAgent represents User-Agent header value to send with every request
	UserAgent string `koanf:"user_agent"`
}

// Firm represents legal name stripping settings
type Firm struct {
	// AllMatches specifies if every legal description found in a name should be removed instead of the first one
	AllMatches bool `koanf:"all_matches"`

	// ExtraSuffixes represents suffix tokens to try after the built-in ones
	ExtraSuffixes []string `koanf:"extra_suffixes"`

	// Workers represents amount of goroutines stripping names at the same time
	Workers int `koanf:"workers"`

	// Dedupe specifies if names which are the same after stripping should be removed
	Dedupe bool `koanf:"dedupe"`
}

// Countdown represents wait progress settings
type Countdown struct {
	// Step represents amount of seconds between remaining time prints
	Step int `koanf:"step"`
}

// DamagedConfigError represents error thrown if config has missing fields
type DamagedConfigError struct {
	MissingFields []string
}

// Error is used to satisfy golang error interface
func (e DamagedConfigError) Error() string {
	return fmt.Sprintf("Config is damaged, missing fields: %v", e.MissingFields)
}

// BadValueError represents error thrown if config field has invalid value
type BadValueError struct {
	Field  string
	Value  any
	Reason string
}

// Error is used to satisfy golang error interface
func (e BadValueError) Error() string {
	return fmt.Sprintf("Bad value of %v: %v. %v", e.Field, e.Value, e.Reason)
}

// Init returns config instance and false if config file at <cfgFilePath> exist, or empty config and true if it was
// created with default values.
//
// Can return errors defined in this package: DamagedConfigError, BadValueError.
func Init(log *logrus.Logger, cfgFilePath string) (Root, bool, error) {
	log.Info("Reading program config")

	ko := koanf.New(".")

	loadConfig := func() error {
		return ko.Load(file.Provider(cfgFilePath), yaml.Parser())
	}

	writeDefConfig := func() error {
		return os.WriteFile(cfgFilePath, defCfgBytes, 0644)
	}

	// Load config file into koanf or create a new if not exist
	var root Root
	if err := loadConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("Config file not found, creating a default")
			if err := writeDefConfig(); err != nil {
				return root, false, errors.Wrap(err, "Write default config")
			}
			return root, true, nil
		} else {
			return root, false, errors.Wrap(err, "Load config")
		}
	}

	// Decode loaded config file into structure
	decoder := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	metadata := mapstructure.Metadata{}
	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:           decoder,
			ErrorUnused:          true,
			IgnoreUntaggedFields: true,
			Metadata:             &metadata,
			Result:               &root,
			WeaklyTypedInput:     true,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, false, errors.Wrap(err, "Decode config")
	}

	// Fields allowed to be absent or empty
	optionalFields := []string{
		"firm.extra_suffixes",
	}
	missingFields, _ := lo.Difference(metadata.Unset, optionalFields)
	if len(missingFields) > 0 {
		err := DamagedConfigError{MissingFields: missingFields}
		return root, false, errors.Wrap(err, "Check config")
	}

	if err := validate(root); err != nil {
		return root, false, errors.Wrap(err, "Validate config")
	}

	return root, false, nil
}

// validate returns BadValueError if any field of <root> has value the program can not work with
func validate(root Root) error {
	formats := []string{"csv", "xlsx", "json"}
	if !lo.Contains(formats, strings.ToLower(root.Export.Format)) {
		return BadValueError{Field: "export.format", Value: root.Export.Format,
			Reason: fmt.Sprintf("Should be one of: %v", formats)}
	}
	if root.Export.DataDir == "" {
		return BadValueError{Field: "export.data_dir", Value: root.Export.DataDir, Reason: "Should not be empty"}
	}
	if root.Fetch.RespTimeout <= 0 {
		return BadValueError{Field: "fetch.resp_timeout", Value: root.Fetch.RespTimeout, Reason: "Should be positive"}
	}
	for _, token := range root.Firm.ExtraSuffixes {
		if _, err := regexp.Compile(token); err != nil {
			return BadValueError{Field: "firm.extra_suffixes", Value: token, Reason: err.Error()}
		}
	}
	if root.Firm.Workers < 1 {
		return BadValueError{Field: "firm.workers", Value: root.Firm.Workers, Reason: "Should be at least 1"}
	}
	if root.Countdown.Step < 1 {
		return BadValueError{Field: "countdown.step", Value: root.Countdown.Step, Reason: "Should be at least 1"}
	}
	return nil
}

// NewDefCfg returns config with default values, the same as in default.yaml
func NewDefCfg() Root {
	return Root{
		Export: Export{
			DataDir: "data",
			Format:  "csv",
			Header:  true,
			Index:   false,
			Append:  false,
		},
		Fetch: Fetch{
			RespTimeout: time.Second * 30,
			SP500URL:    "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies",
			UserAgent:   "ds_helper",
		},
		Firm: Firm{
			AllMatches:    false,
			ExtraSuffixes: []string(nil),
			Workers:       4,
			Dedupe:        false,
		},
		Countdown: Countdown{
			Step: 2,
		},
	}
}

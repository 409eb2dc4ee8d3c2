package cfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ds_helper/util/logger"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	log := logger.New(logrus.DebugLevel)

	path := filepath.Join(t.TempDir(), "ds_helper_test.yaml")

	// Test creation of the default config
	actual, isNewCfg, err := Init(log, path)
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, Root{}, actual, "should return empty config")
	assert.True(t, isNewCfg, "should return true")
	assert.FileExists(t, path, "should create config file")

	// Test reading of the default config
	actual, isNewCfg, err = Init(log, path)
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, NewDefCfg(), actual, "should return default config")
	assert.False(t, isNewCfg, "should return false")

	// Test reading exising non-default config
	actual, isNewCfg, err = Init(log, "test.yaml")
	expected := Root{
		Export: Export{
			DataDir: "out",
			Format:  "xlsx",
			Header:  false,
			Index:   true,
			Append:  true,
		},
		Fetch: Fetch{
			RespTimeout: time.Second * 90,
			SP500URL:    "http://127.0.0.1/sp500.html",
			UserAgent:   "test agent",
		},
		Firm: Firm{
			AllMatches:    true,
			ExtraSuffixes: []string{`GmbH`, `S\.A\.`},
			Workers:       1,
			Dedupe:        true,
		},
		Countdown: Countdown{
			Step: 5,
		},
	}
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, expected, actual, "should return config from file")
	assert.False(t, isNewCfg, "should return false")
}

func TestInitDamaged(t *testing.T) {
	log := logger.New(logrus.DebugLevel)

	path := filepath.Join(t.TempDir(), "damaged.yaml")
	cfgStr := strings.Replace(string(defCfgBytes), "  workers: 4\n", "", 1)
	cfgStr = strings.Replace(cfgStr, "  step: 2\n", "", 1)
	assert.NoError(t, os.WriteFile(path, []byte(cfgStr), 0644))

	_, _, err := Init(log, path)
	assert.Error(t, err, "should return error for config with missing fields")
	damagedErr := DamagedConfigError{}
	assert.True(t, errors.As(err, &damagedErr), "should return DamagedConfigError")
	assert.ElementsMatch(t, []string{"firm.workers", "countdown.step"}, damagedErr.MissingFields,
		"should list every missing field")
}

func TestInitUnknownField(t *testing.T) {
	log := logger.New(logrus.DebugLevel)

	path := filepath.Join(t.TempDir(), "unknown.yaml")
	cfgStr := string(defCfgBytes) + "\nunknown_section:\n  field: 1\n"
	assert.NoError(t, os.WriteFile(path, []byte(cfgStr), 0644))

	_, _, err := Init(log, path)
	assert.Error(t, err, "should return error for config with unknown fields")
}

func TestInitBadValue(t *testing.T) {
	log := logger.New(logrus.DebugLevel)

	cases := map[string][2]string{
		"export.format":       {"format: 'csv'", "format: 'parquet'"},
		"export.data_dir":     {"data_dir: 'data'", "data_dir: ''"},
		"fetch.resp_timeout":  {"resp_timeout: '30s'", "resp_timeout: '0s'"},
		"firm.extra_suffixes": {"  # - 'GmbH'", "  - '(GmbH'"},
		"firm.workers":        {"workers: 4", "workers: 0"},
		"countdown.step":      {"step: 2", "step: -1"},
	}
	for field, repl := range cases {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		cfgStr := strings.Replace(string(defCfgBytes), repl[0], repl[1], 1)
		assert.NoError(t, os.WriteFile(path, []byte(cfgStr), 0644))

		_, _, err := Init(log, path)
		assert.Error(t, err, "should return error for bad "+field)
		badValueErr := BadValueError{}
		assert.True(t, errors.As(err, &badValueErr), "should return BadValueError for "+field)
		assert.Exactly(t, field, badValueErr.Field, "should name the bad field")
	}
}

func TestInitFormatCase(t *testing.T) {
	log := logger.New(logrus.DebugLevel)

	path := filepath.Join(t.TempDir(), "upper.yaml")
	cfgStr := strings.Replace(string(defCfgBytes), "format: 'csv'", "format: 'XLSX'", 1)
	assert.NoError(t, os.WriteFile(path, []byte(cfgStr), 0644))

	actual, _, err := Init(log, path)
	assert.NoError(t, err, "should accept format in any case")
	assert.Exactly(t, "XLSX", actual.Export.Format, "should keep format as written")
}

func TestNewDefCfg(t *testing.T) {
	assert.NoError(t, validate(NewDefCfg()), "default config should be valid")
}

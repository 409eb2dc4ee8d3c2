package fetch

import (
	"fmt"

	"ds_helper/frame"

	"github.com/cockroachdb/errors"
	"github.com/utahta/go-openuri"
)

// TableIndexError represents error thrown if requested table does not exist on the page
type TableIndexError struct {
	Index int
	Total int
}

// Error is used to satisfy golang error interface
func (e TableIndexError) Error() string {
	return fmt.Sprintf("Table index %v is out of range, page has %v tables", e.Index, e.Total)
}

// Tables returns every table of HTML page at <uri>, which can be a local file or URL.
//
// Can return errors defined in this package: ErrNoTables.
func (r repo) Tables(uri string) ([]frame.Frame, error) {
	r.log.Debugf("Fetching tables from %v", uri)
	page, err := openuri.Open(uri, openuri.WithHTTPClient(r.httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "Open page")
	}
	defer page.Close()

	tables, err := ReadHTML(page)
	if err != nil {
		return nil, errors.Wrap(err, "Read tables")
	}
	r.log.Debugf("Found %v tables at %v", len(tables), uri)
	return tables, nil
}

// Table returns table with 0-based index <idx> of HTML page at <uri>, which can be a local file or URL.
//
// Can return errors defined in this package: ErrNoTables, TableIndexError.
func (r repo) Table(uri string, idx int) (frame.Frame, error) {
	tables, err := r.Tables(uri)
	if err != nil {
		return frame.Frame{}, err
	}
	if idx < 0 || idx >= len(tables) {
		return frame.Frame{}, errors.Wrap(TableIndexError{Index: idx, Total: len(tables)}, "Select table")
	}
	return tables[idx], nil
}

// FirmsSP500 returns the first table of the S&P 500 constituents page set in the program config
func (r repo) FirmsSP500() (frame.Frame, error) {
	r.log.Info("Fetching S&P 500 constituents")
	return r.Table(r.cfg.Fetch.SP500URL, 0)
}

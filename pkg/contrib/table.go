package contrib

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often
// start with one.
const utf8BOM = "\ufeff"

// absentValues are cell contents read as "no value" instead of a number.
var absentValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"-NaN": true,
	"null": true,
	"NULL": true,
	"<NA>": true,
	"#N/A": true,
}

// Cell is one commit count of the wide table.
// Present is false for empty or placeholder cells; Value is then zero.
type Cell struct {
	Value   float64
	Present bool
}

// Row holds one user's commit counts, aligned with [Table.Repos].
type Row struct {
	User  string
	Cells []Cell
}

// Table is the in-memory form of the wide commit-count CSV.
type Table struct {
	IDColumn string   // header of the user column (usually "user")
	Repos    []string // repository identifiers in header order
	Rows     []Row    // one row per CSV line, in file order
}

// UserCount returns the number of rows in the table.
func (t *Table) UserCount() int { return len(t.Rows) }

// RepoCount returns the number of repository columns.
func (t *Table) RepoCount() int { return len(t.Repos) }

// LoadWide reads a wide commit-count table from the CSV file at path.
// A missing file yields a FILE_NOT_FOUND error, other read failures IO_ERROR,
// and malformed content PARSE_ERROR.
func LoadWide(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.WrapIO(err, "open %s", path)
	}
	defer f.Close()

	t, err := ReadWide(bufio.NewReader(f))
	if err != nil {
		if errs.Is(err, errs.ErrCodeParse) {
			return nil, errs.Wrap(errs.ErrCodeParse, errors.Unwrap(err), "parse %s", path)
		}
		return nil, err
	}
	return t, nil
}

// ReadWide decodes a wide commit-count table from r.
//
// Every row must have as many fields as the header. Header cells must be
// non-empty and repository names unique. Present cells must hold finite
// numbers; negative values are kept here and removed later by [Filter].
// ReadWide does not close r.
func ReadWide(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.Wrap(errs.ErrCodeParse, &errs.ParseError{Line: 1, Err: errors.New("missing header row")}, "read header")
	}
	if err != nil {
		return nil, readError(err, "read header")
	}

	t, err := newTable(header)
	if err != nil {
		return nil, err
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err, "read row")
		}
		line, _ := cr.FieldPos(0)

		row, err := t.parseRow(line, rec)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func newTable(header []string) (*Table, error) {
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	t := &Table{IDColumn: strings.TrimSpace(header[0])}
	if t.IDColumn == "" {
		return nil, parseError(1, "", errors.New("user column header is empty"))
	}

	seen := make(map[string]bool, len(header)-1)
	for _, name := range header[1:] {
		if err := errs.ValidateIdentifier("repo", name); err != nil {
			return nil, parseError(1, name, err)
		}
		if seen[name] {
			return nil, parseError(1, name, errors.New("duplicate repository column"))
		}
		seen[name] = true
		t.Repos = append(t.Repos, name)
	}
	return t, nil
}

func (t *Table) parseRow(line int, rec []string) (Row, error) {
	user := rec[0]
	if err := errs.ValidateIdentifier("user", user); err != nil {
		return Row{}, parseError(line, t.IDColumn, err)
	}

	row := Row{User: user, Cells: make([]Cell, len(t.Repos))}
	for i, raw := range rec[1:] {
		cell, err := parseCell(raw)
		if err != nil {
			return Row{}, parseError(line, t.Repos[i], err)
		}
		row.Cells[i] = cell
	}
	return row, nil
}

func parseCell(raw string) (Cell, error) {
	s := strings.TrimSpace(raw)
	if absentValues[s] {
		return Cell{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("commit count %q is not a number", raw)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Cell{}, fmt.Errorf("commit count %q is not finite", raw)
	}
	return Cell{Value: v, Present: true}, nil
}

func parseError(line int, column string, err error) error {
	var coded *errs.Error
	if errors.As(err, &coded) {
		err = errors.New(coded.Message)
	}
	return errs.Wrap(errs.ErrCodeParse, &errs.ParseError{Line: line, Column: column, Err: err}, "invalid commit table")
}

// readError converts encoding/csv failures (ragged rows, bad quoting) into
// PARSE_ERROR and anything else into IO_ERROR.
func readError(err error, msg string) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errs.Wrap(errs.ErrCodeParse, &errs.ParseError{Line: pe.Line, Err: pe.Err}, "%s", msg)
	}
	return errs.WrapIO(err, "%s", msg)
}

package io

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

var centralityHeader = []string{"", "repo", "closeness"}

// FormatScore renders a score in its shortest round-trip form, keeping a
// decimal point on integral values ("1.0", "0.5", "0.6666666666666666").
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// WriteCentralityCSV writes rows in the given order with a 0-based index
// column. It does not close w.
func WriteCentralityCSV(w io.Writer, rows centrality.Ranking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(centralityHeader); err != nil {
		return errs.WrapIO(err, "write header")
	}
	for i, r := range rows {
		if err := cw.Write([]string{strconv.Itoa(i), r.Repo, FormatScore(r.Closeness)}); err != nil {
			return errs.WrapIO(err, "write row %d", i)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.WrapIO(err, "flush")
	}
	return nil
}

// ExportCentralityCSV atomically replaces the file at path with rows.
// The directory must exist.
func ExportCentralityCSV(path string, rows centrality.Ranking) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		if err := WriteCentralityCSV(w, rows); err != nil {
			return errs.Wrap(errs.GetCode(err), errors.Unwrap(err), "write %s", path)
		}
		return nil
	})
}

// ReadCentralityCSV decodes a centrality CSV, in file order. Both the indexed
// layout written by [WriteCentralityCSV] and a plain "repo,closeness" layout
// are accepted. It does not close r.
func ReadCentralityCSV(r io.Reader) (centrality.Ranking, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.ErrCodeParse, "missing header row")
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "read header")
	}

	offset, err := headerOffset(header)
	if err != nil {
		return nil, err
	}

	var out centrality.Ranking
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "read row")
		}
		line, _ := cr.FieldPos(0)
		score, err := strconv.ParseFloat(rec[offset+1], 64)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, &errs.ParseError{Line: line, Column: "closeness", Err: err}, "invalid score")
		}
		out = append(out, centrality.Score{Repo: rec[offset], Closeness: score})
	}
	return out, nil
}

func headerOffset(header []string) (int, error) {
	switch {
	case len(header) == 3 && header[1] == "repo" && header[2] == "closeness":
		return 1, nil
	case len(header) == 2 && header[0] == "repo" && header[1] == "closeness":
		return 0, nil
	default:
		return 0, errs.New(errs.ErrCodeParse, "unexpected header %q (want \",repo,closeness\")", strings.Join(header, ","))
	}
}

// ImportCentralityCSV reads the centrality CSV at path.
func ImportCentralityCSV(path string) (centrality.Ranking, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.WrapIO(err, "open %s", path)
	}
	defer f.Close()

	rows, err := ReadCentralityCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Package csvio reads and writes CSV-encoded rows for the wrangling
// engine, adapted from the teacher's typed-Frame CSV reader down to the
// engine's untyped Row: every field is a string-kind Value, and column
// names come either from the file's header row or from synthesized
// "col_N" names when HasHeader is false.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

type ReaderOptions struct {
	HasHeader bool
	Delimiter rune // 0 = sniff in Open, ',' in NewReaderFrom
	Strict    bool // if true, error on short/long records
}

type Reader struct {
	r      *csv.Reader
	opt    ReaderOptions
	names  []string
	header bool // names has been populated

	// pending holds a data record consumed by Names() when HasHeader is
	// false, replayed as the first row by Next() instead of being dropped.
	pending []string

	shortRecords int
	longRecords  int
}

// Open opens a CSV file (transparently gzip-decompressing by extension or
// magic bytes, via ioutils) and returns a Reader.
func Open(path string, opt ReaderOptions) (*Reader, io.Closer, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, nil, err
	}
	rr := csv.NewReader(rc)
	rr.FieldsPerRecord = -1
	if opt.Delimiter == 0 {
		if d, lazy, err := sniffDelimiterAndQuotes(path); err == nil && d != 0 {
			rr.Comma = d
			rr.LazyQuotes = lazy
		}
	} else {
		rr.Comma = opt.Delimiter
	}
	rr.ReuseRecord = false
	return &Reader{r: rr, opt: opt}, rc, nil
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader (stdin, pipe).
func NewReaderFrom(r io.Reader, opt ReaderOptions) *Reader {
	rr := csv.NewReader(r)
	rr.FieldsPerRecord = -1
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	}
	return &Reader{r: rr, opt: opt}
}

// Names returns the column names, reading and consuming the header row
// (or synthesizing col_N names from the first data row) on first call.
func (r *Reader) Names() ([]string, error) {
	if r.header {
		return r.names, nil
	}
	rec, err := r.r.Read()
	if err != nil {
		return nil, err
	}
	if r.opt.HasHeader {
		names := make([]string, len(rec))
		for i, c := range rec {
			names[i] = strings.ToValidUTF8(c, "?")
		}
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], "\uFEFF")
		}
		r.names = names
		r.header = true
		return r.names, nil
	}
	names := make([]string, len(rec))
	for i := range names {
		names[i] = "col_" + strconv.Itoa(i)
	}
	r.names = names
	r.header = true
	r.pending = rec
	return r.names, nil
}

// Next returns the next row, or io.EOF once the file is exhausted.
func (r *Reader) Next() (*w.Row, error) {
	if !r.header {
		if _, err := r.Names(); err != nil {
			return nil, err
		}
	}
	var rec []string
	if r.pending != nil {
		rec, r.pending = r.pending, nil
	} else {
		var err error
		rec, err = r.r.Read()
		if err != nil {
			return nil, err
		}
	}
	if len(rec) > len(r.names) {
		r.longRecords++
		if r.opt.Strict {
			return nil, fmt.Errorf("csv: long record: need %d fields, got %d", len(r.names), len(rec))
		}
	}
	if len(rec) < len(r.names) {
		r.shortRecords++
		if r.opt.Strict {
			return nil, fmt.Errorf("csv: short record: need %d fields, got %d", len(r.names), len(rec))
		}
	}
	row := w.NewRow()
	for i, name := range r.names {
		if i >= len(rec) {
			row.Add(name, w.Str(""))
			continue
		}
		row.Add(name, w.Str(strings.ToValidUTF8(rec[i], "?")))
	}
	return row, nil
}

// Warnings summarizes any short/long record repairs made in non-strict mode.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 && r.longRecords == 0 {
		return ""
	}
	var parts []string
	if r.shortRecords > 0 {
		parts = append(parts, fmt.Sprintf("short_records=%d", r.shortRecords))
	}
	if r.longRecords > 0 {
		parts = append(parts, fmt.Sprintf("long_records=%d", r.longRecords))
	}
	return strings.Join(parts, ", ")
}

func sniffDelimiterAndQuotes(path string) (rune, bool, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = rc.Close() }()
	br := bufio.NewReader(rc)
	sample, _ := br.Peek(4096)
	if len(sample) == 0 {
		return ',', false, nil
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := -1
	for _, c := range candidates {
		cnt := 0
		for _, b := range sample {
			if b == c {
				cnt++
			}
		}
		if cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	quoteCount := 0
	for _, b := range sample {
		if b == '"' {
			quoteCount++
		}
	}
	lazy := quoteCount%2 != 0 || quoteCount > 0
	return rune(best), lazy, nil
}

package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

// StreamReader reads CSV rows in chunks of up to ChunkSize rows, so a
// pipeline stage can run the executor over one chunk at a time instead
// of holding the whole file in memory.
type StreamReader struct {
	r         *Reader
	chunkSize int
}

// NewStreamReader opens the file and returns a StreamReader.
func NewStreamReader(path string, opt ReaderOptions, chunkSize int) (*StreamReader, io.Closer, error) {
	rr, closer, err := Open(path, opt)
	if err != nil {
		return nil, nil, err
	}
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	return &StreamReader{r: rr, chunkSize: chunkSize}, closer, nil
}

// Next returns the next chunk of rows, or io.EOF once the file is exhausted.
func (s *StreamReader) Next() ([]*w.Row, error) {
	rows := make([]*w.Row, 0, s.chunkSize)
	for len(rows) < s.chunkSize {
		row, err := s.r.Next()
		if err == io.EOF {
			if len(rows) == 0 {
				return nil, io.EOF
			}
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Names returns the column names, as determined by the underlying Reader.
func (s *StreamReader) Names() []string { return s.r.names }

// StreamWriter appends row chunks to a CSV file, writing the header once
// from the first chunk's column names.
type StreamWriter struct {
	w           *csv.Writer
	out         io.WriteCloser
	wroteHeader bool
	names       []string
}

func NewStreamWriter(path string, opt WriterOptions) (*StreamWriter, error) {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	cw := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	return &StreamWriter{w: cw, out: out}, nil
}

func (s *StreamWriter) Write(rows []*w.Row) error {
	for _, row := range rows {
		if !s.wroteHeader {
			s.names = row.Names()
			if err := s.w.Write(s.names); err != nil {
				return err
			}
			s.wroteHeader = true
		}
		if row.Len() != len(s.names) {
			return fmt.Errorf("csv: row has %d columns, header has %d", row.Len(), len(s.names))
		}
		rec := make([]string, row.Len())
		for i := 0; i < row.Len(); i++ {
			rec[i] = row.GetValueAt(i).Stringify()
		}
		if err := s.w.Write(rec); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *StreamWriter) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		_ = s.out.Close()
		return err
	}
	return s.out.Close()
}

package jsonlio

import (
	"bufio"
	"encoding/json"
	"io"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

// StreamReader reads JSON-lines rows in chunks, avoiding the schema
// inference pass the teacher's typed-Frame reader needed: a Row has no
// upfront column set to infer.
type StreamReader struct {
	r         *Reader
	chunkSize int
}

func NewStreamReader(path string, chunkSize int) (*StreamReader, io.Closer, error) {
	r, closer, err := Open(path, ReaderOptions{})
	if err != nil {
		return nil, nil, err
	}
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	return &StreamReader{r: r, chunkSize: chunkSize}, closer, nil
}

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

type StreamWriter struct {
	enc *json.Encoder
	w   *bufio.Writer
	out io.WriteCloser
}

func NewStreamWriter(path string) (*StreamWriter, error) {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(out)
	return &StreamWriter{enc: json.NewEncoder(bw), w: bw, out: out}, nil
}

func (s *StreamWriter) Write(rows []*w.Row) error {
	for _, row := range rows {
		if err := s.enc.Encode(rowToMap(row)); err != nil {
			return err
		}
	}
	return s.w.Flush()
}

func (s *StreamWriter) Close() error {
	if err := s.w.Flush(); err != nil {
		_ = s.out.Close()
		return err
	}
	return s.out.Close()
}

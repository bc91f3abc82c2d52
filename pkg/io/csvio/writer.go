package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	iox "github.com/wdm0006/wrangle/pkg/io/ioutils"
	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes rows to a CSV file with a header row taken from the
// first row's column names. Every row must carry the same column count
// as the first; a shorter or longer row is an error.
func WriteAll(path string, rows []*w.Row, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	return writeRows(out, rows, opt)
}

func writeRows(out io.Writer, rows []*w.Row, opt WriterOptions) error {
	cw := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	if len(rows) == 0 {
		cw.Flush()
		return cw.Error()
	}
	names := rows[0].Names()
	if err := cw.Write(names); err != nil {
		return err
	}
	for _, row := range rows {
		if row.Len() != len(names) {
			return fmt.Errorf("csv: row has %d columns, header has %d", row.Len(), len(names))
		}
		rec := make([]string, row.Len())
		for i := 0; i < row.Len(); i++ {
			rec[i] = row.GetValueAt(i).Stringify()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

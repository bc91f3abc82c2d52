// Package parquetio writes the engine's Row stream to Parquet. Unlike
// csvio/jsonlio there is no reader here: the original spec's sources are
// recipe inputs (CSV/JSONL), and Parquet only appears as an output sink,
// so the schema-inference burden the teacher's reader carried moves to
// the writer, inferring a flat JSON schema from the first Row it sees
// rather than from sampled rows read back off disk.
package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	pw "github.com/xitongsys/parquet-go/writer"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

type schemaField struct {
	Tag string `json:"Tag"`
}

type jsonSchema struct {
	Tag    string        `json:"Tag"`
	Fields []schemaField `json:"Fields"`
}

// parquetTag maps a Value's Kind to the xitongsys/parquet-go JSON schema
// tag used by writer.NewJSONWriter. Complex kinds (list/map/JSON) and
// bytes fall back to a UTF8 byte-array column carrying Stringify output,
// since the schema is inferred once from the first row and cannot carry
// a nested Parquet group per recipe.
func parquetTag(name string, v w.Value) string {
	tag := "name=" + name + ", repetitiontype=OPTIONAL, type="
	switch v.Kind() {
	case w.KindInt:
		return tag + "INT64"
	case w.KindFloat:
		return tag + "DOUBLE"
	case w.KindBool:
		return tag + "BOOLEAN"
	default:
		return tag + "BYTE_ARRAY, convertedtype=UTF8"
	}
}

func inferSchema(row *w.Row) (string, []string) {
	names := row.Names()
	sc := jsonSchema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for i, name := range names {
		sc.Fields = append(sc.Fields, schemaField{Tag: parquetTag(name, row.GetValueAt(i))})
	}
	b, _ := json.Marshal(sc)
	return string(b), names
}

func rowToRecord(row *w.Row, columns []string) map[string]any {
	rec := make(map[string]any, len(columns))
	for _, name := range columns {
		v := row.GetValue(name)
		switch v.Kind() {
		case w.KindInt:
			n, _ := v.Int()
			rec[name] = n
		case w.KindFloat:
			f, _ := v.Float()
			rec[name] = f
		case w.KindBool:
			b, _ := v.Bool()
			rec[name] = b
		default:
			rec[name] = v.Stringify()
		}
	}
	return rec
}

// Sink writes Rows to a Parquet file, inferring the flat JSON schema
// from the first Row written and holding later rows to that column set
// and order for the life of the file.
type Sink struct {
	fw      source.ParquetFile
	writer  *pw.JSONWriter
	columns []string
}

// NewSink opens path for writing. Schema initialization is deferred to
// the first Write call, since a Sink has no row to infer from yet.
func NewSink(path string) (*Sink, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("parquet sink open: %w", err)
	}
	return &Sink{fw: fw}, nil
}

func (s *Sink) Write(rows []*w.Row) error {
	for _, row := range rows {
		if s.writer == nil {
			schema, columns := inferSchema(row)
			jw, err := pw.NewJSONWriter(schema, s.fw, 4)
			if err != nil {
				return fmt.Errorf("parquet writer init: %w", err)
			}
			s.writer = jw
			s.columns = columns
		}
		rec := rowToRecord(row, s.columns)
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("parquet row marshal: %w", err)
		}
		if err := s.writer.Write(string(b)); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	return nil
}

func (s *Sink) Close() error {
	if s.writer != nil {
		if err := s.writer.WriteStop(); err != nil {
			_ = s.fw.Close()
			return fmt.Errorf("parquet write stop: %w", err)
		}
	}
	return s.fw.Close()
}

// WriteAll writes rows to path in one call, inferring the schema from
// rows[0]. If rows is empty, no Parquet writer is created and the file
// is left empty, without a Parquet footer.
func WriteAll(path string, rows []*w.Row) error {
	sink, err := NewSink(path)
	if err != nil {
		return err
	}
	if err := sink.Write(rows); err != nil {
		_ = sink.Close()
		return err
	}
	return sink.Close()
}

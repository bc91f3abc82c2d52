// Command wrangle runs a recipe file against an input file and writes
// the transformed rows to an output file, the way the teacher's
// cmd/janitor runs a cleaning pipeline against a Frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/wdm0006/wrangle/pkg/io/csvio"
	"github.com/wdm0006/wrangle/pkg/io/jsonlio"
	"github.com/wdm0006/wrangle/pkg/io/parquetio"
	w "github.com/wdm0006/wrangle/pkg/wrangle"

	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/columns"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/dates"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/expr"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/mask"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/parsefmt"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/slice"
	_ "github.com/wdm0006/wrangle/pkg/wrangle/directives/strcase"
)

var version = "0.1.0-dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (.yaml, .yml, or .toml)")
	flag.Parse()

	if *showVersion {
		fmt.Println("wrangle", version)
		return
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	recipeText, err := os.ReadFile(cfg.Recipe)
	if err != nil {
		return fmt.Errorf("read recipe: %w", err)
	}
	recipe, err := w.ParseRecipe(string(recipeText))
	if err != nil {
		return fmt.Errorf("parse recipe: %w", err)
	}

	rows, err := readInput(cfg)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	runID := uuid.NewString()
	ctx := w.NewExecutionContext(runID, cfg.LookupTables)
	out, failures := w.Run(recipe, rows, ctx)

	if err := writeOutput(cfg, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "run %s: %d rows in, %d rows out, %d rows failed\n", runID, len(rows), len(out), len(failures))
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "  row %d: %v\n", f.InputIndex, f.Err)
	}
	return nil
}

func readInput(cfg *Config) ([]*w.Row, error) {
	switch cfg.Input.Type {
	case "", "csv":
		delim := ','
		if cfg.Input.Delimiter != "" {
			delim = rune(cfg.Input.Delimiter[0])
		}
		r, closer, err := csvio.Open(cfg.Input.Path, csvio.ReaderOptions{HasHeader: cfg.Input.HasHeader, Delimiter: delim})
		if err != nil {
			return nil, err
		}
		defer func() { _ = closer.Close() }()
		return drainRows(r)
	case "jsonl":
		r, closer, err := jsonlio.Open(cfg.Input.Path, jsonlio.ReaderOptions{})
		if err != nil {
			return nil, err
		}
		defer func() { _ = closer.Close() }()
		return drainRows(r)
	default:
		return nil, fmt.Errorf("unsupported input type %q", cfg.Input.Type)
	}
}

type rowReader interface {
	Next() (*w.Row, error)
}

func drainRows(r rowReader) ([]*w.Row, error) {
	var rows []*w.Row
	for {
		row, err := r.Next()
		if err != nil {
			if err == io.EOF {
				return rows, nil
			}
			return rows, err
		}
		rows = append(rows, row)
	}
}

func writeOutput(cfg *Config, rows []*w.Row) error {
	switch cfg.Output.Type {
	case "", "csv":
		delim := ','
		if cfg.Output.Delimiter != "" {
			delim = rune(cfg.Output.Delimiter[0])
		}
		return csvio.WriteAll(cfg.Output.Path, rows, csvio.WriterOptions{Delimiter: delim})
	case "jsonl":
		return jsonlio.WriteAll(cfg.Output.Path, rows)
	case "parquet":
		return parquetio.WriteAll(cfg.Output.Path, rows)
	default:
		return fmt.Errorf("unsupported output type %q", cfg.Output.Type)
	}
}

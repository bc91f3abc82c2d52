package wrangle

// ExecuteRow runs every step of recipe against a single row, threading
// KEEP/SKIP/MANY semantics (spec.md §4.6): KEEP replaces the single
// working row, SKIP discards it and ends the row's pipeline, MANY fans
// the working set out and every subsequent step runs on each resulting
// row in order. A step error aborts this row and is returned as a
// *StepError naming the offending directive's text and line.
func ExecuteRow(recipe *Recipe, row *Row, ctx *ExecutionContext) ([]*Row, error) {
	ctx.advanceRow()
	working := []*Row{row}

	for _, sd := range recipe.Steps {
		if len(working) == 0 {
			break
		}
		var next []*Row
		for _, r := range working {
			res, err := sd.Step.Execute(r, ctx)
			if err != nil {
				return nil, &StepError{Line: sd.Line, Directive: sd.Text, Err: err}
			}
			if res.skip {
				continue
			}
			next = append(next, res.rows...)
		}
		working = next
	}

	return working, nil
}

// RowFailure pairs a source row's position in the input stream with the
// error that aborted it, letting callers collect per-row failures instead
// of aborting the whole run (spec.md §7 "Recovery policy").
type RowFailure struct {
	InputIndex int
	Err        error
}

// Run executes recipe against every row in rows, in input order. Rows
// that fail are recorded in the returned failure list and excluded from
// the output; rows skipped by a filter step are silently excluded (no
// diagnostic, per spec.md §7). Output order matches input order, with
// fan-out rows emitted in the order their parent step produced them
// (spec.md §8 "Order preservation", "Fan-out order").
func Run(recipe *Recipe, rows []*Row, ctx *ExecutionContext) ([]*Row, []RowFailure) {
	var out []*Row
	var failures []RowFailure

	for i, row := range rows {
		produced, err := ExecuteRow(recipe, row, ctx)
		if err != nil {
			failures = append(failures, RowFailure{InputIndex: i, Err: err})
			continue
		}
		out = append(out, produced...)
	}

	return out, failures
}

package expr

import (
	"fmt"
	"strconv"
	"strings"

	w "github.com/wdm0006/wrangle/pkg/wrangle"
)

func init() {
	w.Register("quantize", "quantize <source-column> <destination-column> <[range1:range2)=value>,[<range1:range2]=value>]*", newQuantize)
}

// quantizeRange is one "[lo:hi)=label" / "[lo:hi]=label" bucket; hiInclusive
// tracks whether the upper bound was written with ']' (inclusive) or ')'
// (exclusive).
type quantizeRange struct {
	lo, hi      float64
	hiInclusive bool
	label       string
}

func newQuantize(tok *w.Tokenizer, line int, text string) (w.Step, error) {
	src, err := w.RequireToken(tok, w.ModeWhitespace, "quantize", "source-column", line)
	if err != nil {
		return nil, err
	}
	dest, err := w.RequireToken(tok, w.ModeWhitespace, "quantize", "destination-column", line)
	if err != nil {
		return nil, err
	}
	rangesTok, err := w.RequireToken(tok, w.ModeToEOL, "quantize", "ranges", line)
	if err != nil {
		return nil, err
	}
	ranges, err := parseQuantizeRanges(rangesTok)
	if err != nil {
		return nil, w.NewDirectiveError("quantize", line, "%v", err)
	}

	return w.StepFunc(func(row *w.Row, ctx *w.ExecutionContext) (w.StepResult, error) {
		i := row.Find(src)
		if i < 0 {
			return w.StepResult{}, fmt.Errorf("quantize: column %q not found", src)
		}
		n, ok := row.GetValueAt(i).Numeric()
		if !ok {
			return w.StepResult{}, fmt.Errorf("quantize: column %q is not numeric", src)
		}
		label := w.Null()
		for _, r := range ranges {
			if n >= r.lo && (n < r.hi || (r.hiInclusive && n == r.hi)) {
				label = w.Str(r.label)
				break
			}
		}
		row.SetValueByName(dest, label)
		return w.Keep(row), nil
	}), nil
}

// parseQuantizeRanges parses comma-separated "[lo:hi)=label" or
// "[lo:hi]=label" segments.
func parseQuantizeRanges(spec string) ([]quantizeRange, error) {
	segments := strings.Split(spec, ",")
	ranges := make([]quantizeRange, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			return nil, fmt.Errorf("missing '=' in quantize range %q", seg)
		}
		boundsPart, label := seg[:eq], seg[eq+1:]
		boundsPart = strings.TrimSpace(boundsPart)
		if len(boundsPart) < 2 || boundsPart[0] != '[' {
			return nil, fmt.Errorf("quantize range must start with '[', got %q", seg)
		}
		closing := boundsPart[len(boundsPart)-1]
		if closing != ')' && closing != ']' {
			return nil, fmt.Errorf("quantize range must end with ')' or ']', got %q", seg)
		}
		inner := boundsPart[1 : len(boundsPart)-1]
		parts := strings.SplitN(inner, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("quantize range must be of the form [lo:hi), got %q", seg)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid lower bound in %q: %v", seg, err)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid upper bound in %q: %v", seg, err)
		}
		ranges = append(ranges, quantizeRange{lo: lo, hi: hi, hiInclusive: closing == ']', label: strings.TrimSpace(label)})
	}
	return ranges, nil
}

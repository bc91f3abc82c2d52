package wrangle

import "strings"

// ParseRecipe translates DSL text into a validated, ordered Recipe, or
// returns the first ParseError encountered (spec.md §4.4). It is a pure
// function of its input (spec.md §8 "Parse determinism").
func ParseRecipe(text string) (*Recipe, error) {
	lines := strings.Split(text, "\n")
	recipe := &Recipe{}

	for i, raw := range lines {
		line := i + 1
		trimmed := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(trimmed) == "" {
			continue // blank line: counter still advances via `line`
		}

		tok := NewTokenizer(trimmed)
		name, ok := tok.Next(ModeWhitespace)
		if !ok {
			continue
		}

		key := name
		if name == "set" {
			sub, ok := tok.Next(ModeWhitespace)
			if !ok {
				return nil, newMissingFieldError("set", "format|column|columns", line, "")
			}
			key = "set " + sub
		}

		info, ok := lookup(key)
		if !ok {
			return nil, newUnknownDirectiveError(key, line)
		}

		step, err := info.ctor(tok, line, trimmed)
		if err != nil {
			return nil, err
		}

		recipe.Steps = append(recipe.Steps, StepDescriptor{
			Line:      line,
			Text:      trimmed,
			Directive: key,
			Step:      step,
		})
	}

	return recipe, nil
}

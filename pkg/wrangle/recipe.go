package wrangle

// StepDescriptor is an immutable record of one parsed directive: its
// source line number, original text, the registry key it resolved to, and
// the constructed Step. Constructed by the parser, consumed by the
// executor, never mutated (spec.md §3).
type StepDescriptor struct {
	Line      int
	Text      string
	Directive string
	Step      Step
}

// Recipe is the ordered list of StepDescriptors produced by ParseRecipe.
// Equal recipes produce equal step lists from equal DSL input (spec.md §8
// "Parse determinism").
type Recipe struct {
	Steps []StepDescriptor
}

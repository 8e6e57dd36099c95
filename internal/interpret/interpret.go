// Package interpret runs a fixed set of independent readings over captured
// clipboard text. Each interpreter either produces a structured result or
// declines; declining is a normal outcome, not an error.
//
// Adding an interpreter:
//  1. Create a file in this package implementing Interpreter.
//  2. Append an instance to the list in NewRegistry.
package interpret

import "log/slog"

// RGBA is a color swatch attached to an Item.
type RGBA struct {
	R, G, B, A uint8
}

// Item is one labelled field of an interpreter's output.
type Item struct {
	Label  string
	Value  string
	Swatch *RGBA
}

func textItem(label, value string) Item {
	return Item{Label: label, Value: value}
}

func swatchItem(label, value string, c RGBA) Item {
	return Item{Label: label, Value: value, Swatch: &c}
}

// Result is the ordered output of a single interpreter run. Results are
// transient: they are recomputed every time an entry is selected.
type Result struct {
	Items []Item
}

// Interpreter maps text to zero or one structured reading. Implementations
// are stateless and safe to share across callers.
type Interpreter interface {
	// Name returns the stable display name of this interpreter.
	Name() string
	// Interpret returns the reading for content, or nil when the content is
	// not applicable. It must not panic on adversarial input.
	Interpret(content string) *Result
}

// Outcome pairs an interpreter's name with its result. A nil Result means
// the interpreter declined.
type Outcome struct {
	Name   string
	Result *Result
}

// Registry holds the fixed, ordered interpreter list.
type Registry struct {
	interpreters []Interpreter
}

// NewRegistry returns the registry with the built-in interpreters.
func NewRegistry() *Registry {
	return &Registry{interpreters: []Interpreter{
		Hex{},
		UUID{},
		Color{},
		FilePath{},
	}}
}

// Len returns the number of registered interpreters.
func (r *Registry) Len() int {
	return len(r.interpreters)
}

// RunAll invokes every interpreter over content and returns one outcome per
// interpreter in registry order. Interpreters are isolated from each other:
// a panic in one is absorbed and recorded as a decline.
func (r *Registry) RunAll(content string) []Outcome {
	outcomes := make([]Outcome, 0, len(r.interpreters))
	for _, in := range r.interpreters {
		outcomes = append(outcomes, Outcome{Name: in.Name(), Result: runOne(in, content)})
	}
	return outcomes
}

func runOne(in Interpreter, content string) (res *Result) {
	defer func() {
		if v := recover(); v != nil {
			slog.Error("interpreter panicked, treating as not applicable",
				"interpreter", in.Name(),
				"panic", v,
			)
			res = nil
		}
	}()
	return in.Interpret(content)
}

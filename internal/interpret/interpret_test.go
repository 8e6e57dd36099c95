package interpret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_OrderPreserved(t *testing.T) {
	outcomes := NewRegistry().RunAll("anything")

	require.Len(t, outcomes, 4)
	require.Equal(t, "Hex Dump", outcomes[0].Name)
	require.Equal(t, "UUID", outcomes[1].Name)
	require.Equal(t, "Color Code", outcomes[2].Name)
	require.Equal(t, "File Path", outcomes[3].Name)
}

func TestRegistry_DeclineIsNotAnError(t *testing.T) {
	outcomes := NewRegistry().RunAll("just some words")

	require.NotNil(t, outcomes[0].Result, "hex always applies")
	require.Nil(t, outcomes[1].Result)
	require.Nil(t, outcomes[2].Result)
	require.Nil(t, outcomes[3].Result)
}

func TestRegistry_AdversarialInputNeverFaults(t *testing.T) {
	reg := NewRegistry()
	inputs := []string{
		"",
		"\x00\xff\xfe\x80",
		strings.Repeat("a", 1<<20),
		strings.Repeat("#f50 ", 1000),
		"550e8400-e29b-41d4-a716-44665544000", // one nibble short
		"rgb(,,,)",
		"#",
		"~\x00",
		"/\x00/etc",
		"🙂🙃�",
	}

	for _, input := range inputs {
		require.NotPanics(t, func() {
			outcomes := reg.RunAll(input)
			require.Len(t, outcomes, reg.Len())
		})
	}
}

type panicky struct{}

func (panicky) Name() string { return "Panicky" }
func (panicky) Interpret(string) *Result {
	panic("boom")
}

type constant struct{}

func (constant) Name() string { return "Constant" }
func (constant) Interpret(string) *Result {
	return &Result{Items: []Item{textItem("ok", "yes")}}
}

func TestRegistry_PanicIsolatedToOneInterpreter(t *testing.T) {
	reg := &Registry{interpreters: []Interpreter{constant{}, panicky{}, constant{}}}

	var outcomes []Outcome
	require.NotPanics(t, func() { outcomes = reg.RunAll("x") })

	require.Len(t, outcomes, 3)
	require.NotNil(t, outcomes[0].Result, "interpreter before the panic is unaffected")
	require.Nil(t, outcomes[1].Result, "a panic maps to a decline")
	require.NotNil(t, outcomes[2].Result, "interpreter after the panic still runs")
}

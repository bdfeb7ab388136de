package task

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zy/internal/common/failure"
	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/interface/scope"
	"github.com/michaelmacinnis/zy/internal/common/type/env"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/engine/commands"
	"github.com/michaelmacinnis/zy/internal/reader"
)

type harness struct {
	out   *bytes.Buffer
	scope scope.I
	t     *testing.T
	task  *T
}

func setup(t *testing.T) *harness {
	h := &harness{
		out:  &bytes.Buffer{},
		t:    t,
		task: New(0),
	}

	h.scope = env.New(nil)

	for k, v := range commands.Constants() {
		h.scope.Define(k, v)
	}

	for k, fn := range commands.Functions(commands.Stream(strings.NewReader(""), h.out)) {
		h.scope.Define(k, NewBuiltin(k, fn))
	}

	return h
}

func (h *harness) eval(s string) (cell.I, error) {
	h.t.Helper()

	c, err := reader.Parse(s)
	require.NoError(h.t, err, s)

	return h.task.Eval(c, h.scope)
}

func (h *harness) fails(kind failure.Kind, s string) error {
	h.t.Helper()

	_, err := h.eval(s)
	require.Error(h.t, err, s)
	assert.Equal(h.t, kind, failure.KindOf(err), "%s: %v", s, err)

	return err
}

func (h *harness) prints(expected, s string) {
	h.t.Helper()

	c, err := h.eval(s)
	require.NoError(h.t, err, s)
	assert.Equal(h.t, expected, literal.String(c), s)
}

func (h *harness) void(s string) {
	h.t.Helper()

	c, err := h.eval(s)
	require.NoError(h.t, err, s)
	assert.Nil(h.t, c, s)
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.prints("3", "(+ 1 2)")
	h.prints("7", "(+ 1 (* 2 3))")
}

func TestAtoms(t *testing.T) {
	h := setup(t)

	h.prints("42", "42")
	h.prints(`"s"`, `"s"`)
	h.prints("()", "()")
	h.prints("#t", "#t")
	h.prints("#nil", "#nil")
	h.prints("+", "+")
}

func TestDefinitionPersistence(t *testing.T) {
	h := setup(t)

	h.void("(-> x 5)")
	h.prints("6", "(+ x 1)")

	h.void("(-> x (+ x 1))")
	h.prints("6", "x")

	h.void("(-> y (. 1))")
	h.prints("#nil", "y")
}

func TestConditional(t *testing.T) {
	h := setup(t)

	h.void("(? #t (-> y 1) (-> y 2))")
	h.prints("1", "y")

	h.prints(`"no"`, `(? #f "yes" "no")`)
	h.prints(`"no"`, `(? #nil "yes" "no")`)
	h.prints(`"yes"`, `(? 0 "yes" "no")`)
	h.prints(`"yes"`, `(? "" "yes" "no")`)
	h.prints(`"no"`, `(? (-> z 1) "yes" "no")`)

	h.fails(failure.Operation, "(? #t 1)")
	h.fails(failure.UndefinedVariable, "(? #f 1 undefined)")
}

func TestMultiAssign(t *testing.T) {
	h := setup(t)

	h.void("(,-> a b 1 2)")
	h.prints("1", "a")
	h.prints("2", "b")

	h.void("(,-> a b b a)")
	h.prints("2", "a")
	h.prints("1", "b")

	h.fails(failure.CountMismatch, "(,-> a b 1)")
	h.fails(failure.Operation, "(,-> 1 2)")

	h.void("(,->)")
}

func TestMultiAssignErrorBindsNothing(t *testing.T) {
	h := setup(t)

	h.fails(failure.UndefinedVariable, "(,-> p q 1 r)")
	h.fails(failure.UndefinedVariable, "p")
}

func TestLambda(t *testing.T) {
	h := setup(t)

	h.prints("(@ (n) (* n n))", "(@ (n) (* n n))")

	h.void("(-> square (@ (n) (* n n)))")
	h.prints("49", "(square 7)")
	h.prints("9", "((@ (a b) (+ a b)) 4 5)")
	h.prints("1", "((@ () 1))")

	h.fails(failure.Operation, "(square 1 2)")
	h.fails(failure.Operation, "(@ n n)")
	h.fails(failure.Operation, "(@ (1) 1)")
}

func TestLexicalScope(t *testing.T) {
	h := setup(t)

	h.void("(-> n 100)")
	h.void("(-> adder (@ (n) (@ (x) (+ x n))))")
	h.void("(-> add5 (adder 5))")
	h.prints("8", "(add5 3)")
	h.prints("100", "n")

	// Definitions in a body stay in the call's frame.
	h.void("(-> f (@ () (-> local 1)))")
	h.void("(f)")
	h.fails(failure.UndefinedVariable, "local")
}

func TestRecursion(t *testing.T) {
	h := setup(t)

	h.void("(-> fact (@ (n) (? (< n 2) 1 (* n (fact (-- n))))))")
	h.prints("120", "(fact 5)")
	h.prints("3628800", "(fact 10)")
}

func TestForeach(t *testing.T) {
	h := setup(t)

	h.void("(-> total 0)")
	h.prints("10", "(*> i (.. 1 5) (-> total (+ total i)) total)")
	h.prints("0", "total")

	h.void(`(-> acc "")`)
	h.prints(`"abc"`, `(*> c "abc" (-> acc (+ acc c)) acc)`)

	h.prints("4", "(*> i ([] 1 2 3 4) (. i) i)")
	h.prints("1000000", "(*> i (.. 0 1000) (-> big (* 1000 (++ i))) big)")
	h.prints(`"empty"`, `(*> i () (-> x 1) "empty")`)

	h.fails(failure.Operation, "(*> i 5 i i)")
	h.fails(failure.Operation, "(*> i () i)")
}

func TestForeachOrder(t *testing.T) {
	h := setup(t)

	h.void("(-> seen ())")
	h.prints("(3 2 1)", "(*> i (.. 1 4) (-> seen (+ ([] i) seen)) seen)")
}

func TestApplicationErrors(t *testing.T) {
	h := setup(t)

	h.fails(failure.Operation, "(1 2)")
	h.fails(failure.Operation, `("f")`)
	h.fails(failure.Operation, "(+ 1 #t)")
	h.fails(failure.UndefinedVariable, "(nope 1)")
	h.fails(failure.UndefinedVariable, "(+ 1 nope)")

	err := h.fails(failure.Operation, "(/ 1 0)")
	assert.Contains(t, err.Error(), "/: division by zero")
}

func TestUndefined(t *testing.T) {
	h := setup(t)

	err := h.fails(failure.UndefinedVariable, "never-bound")
	assert.Contains(t, err.Error(), "never-bound")
}

func TestDepthLimit(t *testing.T) {
	h := setup(t)
	h.task = New(200)

	h.void("(-> loop (@ (n) (loop (++ n))))")

	err := h.fails(failure.Operation, "(loop 0)")
	assert.Contains(t, err.Error(), "maximum recursion depth exceeded")

	// The depth is reset for the next evaluation.
	h.void("(-> count (@ (n) (? (< n 10) (count (++ n)) n)))")
	h.prints("10", "(count 0)")
}

func TestApply(t *testing.T) {
	h := setup(t)

	h.void("(-> double (@ (n) (* 2 n)))")

	f, err := h.eval("double")
	require.NoError(t, err)

	c, err := h.task.Apply(f, []cell.I{num.Int(21)})
	require.NoError(t, err)
	assert.Equal(t, "42", literal.String(c))

	_, err = h.task.Apply(num.Int(1), nil)
	assert.True(t, failure.Is(err, failure.Operation))
}

func TestPrintThroughConsole(t *testing.T) {
	h := setup(t)

	h.prints("#nil", `(>> "x =" (+ 1 2))`)
	assert.Equal(t, "x = 3\n", h.out.String())
}

func TestKeywords(t *testing.T) {
	assert.ElementsMatch(t, []string{"?", "->", ",->", "@", "*>"}, Keywords())
}

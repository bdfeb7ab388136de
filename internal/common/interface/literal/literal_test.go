package literal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/zy/internal/common/interface/cell"
	"github.com/michaelmacinnis/zy/internal/common/interface/literal"
	"github.com/michaelmacinnis/zy/internal/common/type/boolean"
	"github.com/michaelmacinnis/zy/internal/common/type/env"
	"github.com/michaelmacinnis/zy/internal/common/type/list"
	"github.com/michaelmacinnis/zy/internal/common/type/null"
	"github.com/michaelmacinnis/zy/internal/common/type/num"
	"github.com/michaelmacinnis/zy/internal/common/type/str"
	"github.com/michaelmacinnis/zy/internal/common/type/sym"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		c        cell.I
		expected string
	}{
		{nil, ""},
		{num.Int(3), "3"},
		{num.Float(-0.25), "-0.25"},
		{num.Float(1e6), "1000000"},
		{num.Float(123456789), "123456789"},
		{num.Float(-3628800), "-3628800"},
		{num.Float(1e20), "100000000000000000000"},
		{num.Float(1e21), "1e+21"},
		{num.Float(1234567.5), "1.2345675e+06"},
		{num.Float(math.NaN()), "NaN"},
		{num.Float(math.Inf(1)), "+Inf"},
		{str.New("plain"), `"plain"`},
		{str.New(`say "hi"`), `"say \"hi\""`},
		{str.New("ünï"), `"ünï"`},
		{sym.New("->"), "->"},
		{boolean.True, "#t"},
		{boolean.False, "#f"},
		{null.Nil, "#nil"},
		{list.New(), "()"},
		{list.New(sym.New("+"), num.Int(1), list.New(str.New("a"))), `(+ 1 ("a"))`},
		{env.New(nil), "<environment>"},
	} {
		assert.Equal(t, tc.expected, literal.String(tc.c))
	}
}

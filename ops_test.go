package minicalc

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.calc")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no programs in testdir")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		env := NewEnv(&buf)
		_, err = env.Run(bytes.NewReader(b))
		base := strings.TrimSuffix(fn, ".calc")
		if err != nil {
			b, err2 := os.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Errorf("%s: %v", fn, err)
			}
			continue
		}
		b, err = os.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(b), buf.String()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", fn, diff)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "print 42", want: 42},
		{input: "print (4 + 7)", want: 11},
		{input: "print (4 + (39 * 6))", want: 238},
		{input: "print (4 * (39 + 3))", want: 168},
		{input: "print ((1 + 2) * (3 + 4))", want: 21},
		{input: "print ((((1 + 1) + 1) + 1) + 1)", want: 5},
		{input: "print (9223372036854775807 * 1)", want: math.MaxInt64},
		{input: "print (0 * 0)", want: 0},
	}
	for _, test := range tests {
		node, err := ParseString(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		got, err := Eval(node)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, got)
		}
	}
}

func TestEvalDeepNesting(t *testing.T) {
	const depth = 10000
	src := "print " + strings.Repeat("(1 + ", depth) + "1" + strings.Repeat(")", depth)
	node, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != depth+1 {
		t.Errorf("want %d but got %d", depth+1, got)
	}
}

func TestEvalOverflow(t *testing.T) {
	tests := []struct {
		node Expr
		want string
	}{
		{
			node: Sum{Left: Constant{Value: math.MaxInt64}, Right: Constant{Value: 1}},
			want: "arithmetic overflow: 9223372036854775807 + 1",
		},
		{
			node: Sum{Left: Constant{Value: math.MinInt64}, Right: Constant{Value: -1}},
			want: "arithmetic overflow: -9223372036854775808 + -1",
		},
		{
			node: Multiply{Left: Constant{Value: 4294967296}, Right: Constant{Value: 4294967296}},
			want: "arithmetic overflow: 4294967296 * 4294967296",
		},
		{
			node: Multiply{Left: Constant{Value: -1}, Right: Constant{Value: math.MinInt64}},
			want: "arithmetic overflow: -1 * -9223372036854775808",
		},
		{
			node: Sum{Left: Constant{Value: 1}, Right: Multiply{Left: Constant{Value: math.MaxInt64}, Right: Constant{Value: 2}}},
			want: "arithmetic overflow: 9223372036854775807 * 2",
		},
	}
	for _, test := range tests {
		_, err := Eval(test.node)
		if !errors.Is(err, ErrArithmeticOverflow) {
			t.Fatalf("%v: want arithmetic overflow but got %v", test.node, err)
		}
		if err.Error() != test.want {
			t.Errorf("want %q but got %q", test.want, err.Error())
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if v, ok := doPlus(-5, 3); !ok || v != -2 {
		t.Errorf("doPlus(-5, 3) = %d, %v", v, ok)
	}
	if v, ok := doPlus(math.MaxInt64, math.MinInt64); !ok || v != -1 {
		t.Errorf("doPlus(max, min) = %d, %v", v, ok)
	}
	if v, ok := doMul(-3, 7); !ok || v != -21 {
		t.Errorf("doMul(-3, 7) = %d, %v", v, ok)
	}
	if v, ok := doMul(math.MinInt64, 1); !ok || v != math.MinInt64 {
		t.Errorf("doMul(min, 1) = %d, %v", v, ok)
	}
	if _, ok := doMul(math.MinInt64, 2); ok {
		t.Error("doMul(min, 2) should overflow")
	}
}

func TestEnvPrintsNothingOnError(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(&buf)
	if _, err := env.RunString("print (9223372036854775807 + 1)"); err == nil {
		t.Fatal("want error")
	}
	if buf.Len() != 0 {
		t.Errorf("want no output but got %q", buf.String())
	}

	v, err := env.RunString("print (2 * 21)")
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 || buf.String() != "42\n" {
		t.Errorf("got %d and %q", v, buf.String())
	}
}

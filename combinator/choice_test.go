package combinator

import (
	"strconv"
	"testing"
)

func TestChoiceFirstMatchWins(t *testing.T) {
	short := Literal("a")
	long := Literal("ab")

	r, ok := Parse(Choice(short, long), "abc")
	if !ok {
		t.Fatalf("Choice failed")
	}
	if r.Value.String() != "a" || r.Remainder.String() != "bc" {
		t.Errorf("Choice(short, long) = (%q, %q), want (%q, %q)", r.Value, r.Remainder, "a", "bc")
	}

	r, ok = Parse(Choice(long, short), "abc")
	if !ok {
		t.Fatalf("Choice failed")
	}
	if r.Value.String() != "ab" || r.Remainder.String() != "c" {
		t.Errorf("Choice(long, short) = (%q, %q), want (%q, %q)", r.Value, r.Remainder, "ab", "c")
	}
}

func TestChoiceFailsWhenAllFail(t *testing.T) {
	p := Choice(Literal("a"), Literal("b"), Literal("c"))
	if _, ok := Parse(p, "d"); ok {
		t.Errorf("Choice succeeded on d")
	}
	if _, ok := Parse(p, ""); ok {
		t.Errorf("Choice succeeded on empty input")
	}
	if r, ok := Parse(p, "c"); !ok || r.Value.String() != "c" {
		t.Errorf("Choice on c = (%q, %v), want (c, true)", r.Value, ok)
	}
}

func TestChoiceCommits(t *testing.T) {
	// Once "a" matches, the longer alternative is never retried even though
	// the surrounding sequence then fails.
	p := Seq(Choice(Literal("a"), Literal("ab")), Literal("c"))
	if _, ok := Parse(p, "abc"); ok {
		t.Errorf("Seq(Choice(a, ab), c) succeeded on abc")
	}
	if _, ok := Parse(p, "ac"); !ok {
		t.Errorf("Seq(Choice(a, ab), c) failed on ac")
	}
}

func TestChoiceSharedTransformedType(t *testing.T) {
	number := Transform(func(v View) int {
		n, _ := strconv.Atoi(v.String())
		return n
	}, Plus(Predicate(IsDigit)))
	word := Transform(func(v View) int { return v.Len() }, Plus(Predicate(IsLetter)))

	p := Choice(number, word)
	if r, ok := Parse(p, "42"); !ok || r.Value != 42 {
		t.Errorf("Choice on 42 = (%d, %v), want (42, true)", r.Value, ok)
	}
	if r, ok := Parse(p, "four"); !ok || r.Value != 4 {
		t.Errorf("Choice on four = (%d, %v), want (4, true)", r.Value, ok)
	}
}

func TestChoice2(t *testing.T) {
	number := Transform(func(v View) int {
		n, _ := strconv.Atoi(v.String())
		return n
	}, Plus(Predicate(IsDigit)))
	p := Choice2(number, Plus(Predicate(IsLetter)))

	r, ok := Parse(p, "12ab")
	if !ok {
		t.Fatalf("Choice2 failed")
	}
	if r.Value.Index() != 0 {
		t.Errorf("Index = %d, want 0", r.Value.Index())
	}
	if n, ok := r.Value.First(); !ok || n != 12 {
		t.Errorf("First = (%d, %v), want (12, true)", n, ok)
	}
	if _, ok := r.Value.Second(); ok {
		t.Errorf("Second should not be set")
	}
	if r.Remainder.String() != "ab" {
		t.Errorf("Remainder = %q, want %q", r.Remainder, "ab")
	}

	r, ok = Parse(p, "ab12")
	if !ok {
		t.Fatalf("Choice2 failed")
	}
	if w, ok := r.Value.Second(); !ok || w.String() != "ab" {
		t.Errorf("Second = (%q, %v), want (ab, true)", w, ok)
	}
	if got := r.Value.String(); got != "#1(ab)" {
		t.Errorf("String = %q, want %q", got, "#1(ab)")
	}

	if _, ok := Parse(p, "--"); ok {
		t.Errorf("Choice2 succeeded on --")
	}
}

func TestChoice3(t *testing.T) {
	flag := Transform(func(View) bool { return true }, Literal("yes"))
	number := Transform(func(v View) int { return v.Len() }, Plus(Predicate(IsDigit)))
	p := Choice3(flag, number, Literal("-"))

	tests := []struct {
		input string
		index int
		value any
	}{
		{"yes", 0, true},
		{"123", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := Parse(p, tt.input)
			if !ok {
				t.Fatalf("Choice3 failed")
			}
			if r.Value.Index() != tt.index {
				t.Errorf("Index = %d, want %d", r.Value.Index(), tt.index)
			}
			if r.Value.Value() != tt.value {
				t.Errorf("Value = %v, want %v", r.Value.Value(), tt.value)
			}
		})
	}

	r, ok := Parse(p, "-x")
	if !ok {
		t.Fatalf("Choice3 failed on -x")
	}
	if v, ok := r.Value.Third(); !ok || v.String() != "-" {
		t.Errorf("Third = (%q, %v), want (-, true)", v, ok)
	}
	if _, ok := Parse(p, "no"); ok {
		t.Errorf("Choice3 succeeded on no")
	}
}

func TestChoiceWithoutAlternativesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Choice() did not panic")
		}
	}()
	Choice[View]()
}

func TestChoice4And5(t *testing.T) {
	flag := Transform(func(View) bool { return true }, Literal("yes"))
	count := Transform(func(v View) int { return v.Len() }, Plus(Predicate(IsDigit)))
	word := Plus(Predicate(IsLetter))
	sign := Transform(func(View) rune { return '-' }, Literal("-"))
	space := Transform(func(v View) string { return "space" }, Plus(Predicate(IsSpace)))

	p4 := Choice4(flag, count, word, sign)
	p5 := Choice5(flag, count, word, sign, space)

	tests := []struct {
		input string
		index int
		rest  string
	}{
		{"yes!", 0, "!"},
		{"007x", 1, "x"},
		{"abc1", 2, "1"},
		{"-1", 3, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r4, ok := Parse(p4, tt.input)
			if !ok {
				t.Fatalf("Choice4 failed")
			}
			if r4.Value.Index() != tt.index || r4.Remainder.String() != tt.rest {
				t.Errorf("Choice4 = (#%d, %q), want (#%d, %q)", r4.Value.Index(), r4.Remainder, tt.index, tt.rest)
			}
			r5, ok := Parse(p5, tt.input)
			if !ok {
				t.Fatalf("Choice5 failed")
			}
			if r5.Value.Index() != tt.index || r5.Remainder.String() != tt.rest {
				t.Errorf("Choice5 = (#%d, %q), want (#%d, %q)", r5.Value.Index(), r5.Remainder, tt.index, tt.rest)
			}
		})
	}

	r4, _ := Parse(p4, "-")
	if s, ok := r4.Value.Fourth(); !ok || s != '-' {
		t.Errorf("Fourth = (%q, %v), want ('-', true)", s, ok)
	}
	if _, ok := r4.Value.First(); ok {
		t.Errorf("First should not be set")
	}

	if _, ok := Parse(p4, "  "); ok {
		t.Errorf("Choice4 succeeded on blank input")
	}
	r5, ok := Parse(p5, "  x")
	if !ok {
		t.Fatalf("Choice5 failed on blank input")
	}
	if s, ok := r5.Value.Fifth(); !ok || s != "space" {
		t.Errorf("Fifth = (%q, %v), want (space, true)", s, ok)
	}
	if got := r5.Value.String(); got != "#4(space)" {
		t.Errorf("String = %q, want %q", got, "#4(space)")
	}
	if n, ok := r5.Value.Third(); ok {
		t.Errorf("Third = %q, should not be set", n)
	}
}

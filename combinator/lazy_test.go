package combinator

import (
	"sync"
	"testing"
)

// nested matches balanced parentheses: nested = "(" nested* ")".
func nested() Parser[View] {
	var p Parser[View]
	p = Seq(Literal("("), Star(Lazy(func() Parser[View] { return p })), Literal(")"))
	return p
}

func TestLazyRecursion(t *testing.T) {
	p := nested()
	tests := []struct {
		input string
		ok    bool
		rest  string
	}{
		{"()", true, ""},
		{"(())x", true, "x"},
		{"(()())()", true, "()"},
		{"(()", false, ""},
		{")(", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := Parse(p, tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && r.Remainder.String() != tt.rest {
				t.Errorf("Remainder = %q, want %q", r.Remainder, tt.rest)
			}
		})
	}
}

func TestLazyBuildsOnce(t *testing.T) {
	builds := 0
	p := Lazy(func() Parser[View] {
		builds++
		return Literal("a")
	})
	if builds != 0 {
		t.Fatalf("Lazy built eagerly")
	}
	for i := 0; i < 3; i++ {
		Parse(p, "a")
	}
	if builds != 1 {
		t.Errorf("build called %d times, want 1", builds)
	}
}

func TestParsersAreSafeForConcurrentUse(t *testing.T) {
	p := nested()
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, ok := Parse(p, "(()(()))rest")
			if !ok || r.Remainder.String() != "rest" {
				errs <- r.Remainder.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for rest := range errs {
		t.Errorf("concurrent parse gave remainder %q", rest)
	}
}

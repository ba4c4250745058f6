package scheme

import "testing"

func wantDisplay(t *testing.T, src, want string) {
	t.Helper()
	got := FormatValue(evalSrc(t, src))
	if got != want {
		t.Fatalf("FormatValue of %q = %q, want %q", src, got, want)
	}
}

func Test_FormatValue_Atoms(t *testing.T) {
	wantDisplay(t, "42", "42")
	wantDisplay(t, "2.5", "2.5")
	wantDisplay(t, "(/ 4 2)", "2.0")
	wantDisplay(t, "#t", "#t")
	wantDisplay(t, "(not #t)", "#f")
	wantDisplay(t, "()", "()")
}

func Test_FormatValue_Lists_And_Pairs(t *testing.T) {
	wantDisplay(t, "(list 1 2 3)", "(1 2 3)")
	wantDisplay(t, "(cons 1 2)", "(1 . 2)")
	wantDisplay(t, "(cons 1 (cons 2 3))", "(1 2 . 3)")
	wantDisplay(t, "(list (list 1) ())", "((1) ())")
}

func Test_FormatValue_Procedures(t *testing.T) {
	wantDisplay(t, "(lambda (a b) a)", "#[closure (a b)]")
	wantDisplay(t, "car", "#[builtin car]")
}

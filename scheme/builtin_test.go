package scheme

import "testing"

func Test_Builtin_Addition(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(+)"), 0)
	wantInt(t, mustEval(t, frame, "(+ 5)"), 5)
	wantInt(t, mustEval(t, frame, "(+ 1 2 3 4)"), 10)
	wantNum(t, mustEval(t, frame, "(+ 1 2.5)"), 3.5)
	wantEvalError(t, evalErr(t, frame, "(+ 1 #t)"))
}

func Test_Builtin_Subtraction(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(- 5)"), -5)
	wantInt(t, mustEval(t, frame, "(- 10 1 2)"), 7)
	wantNum(t, mustEval(t, frame, "(- 1.5 0.5)"), 1.0)
	wantEvalError(t, evalErr(t, frame, "(-)"))
}

func Test_Builtin_Multiplication(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(* 7)"), 7)
	wantInt(t, mustEval(t, frame, "(* 2 3 4)"), 24)
	wantNum(t, mustEval(t, frame, "(* 2 0.5)"), 1.0)
	wantEvalError(t, evalErr(t, frame, "(*)"))
}

func Test_Builtin_Division(t *testing.T) {
	frame := NewGlobalFrame()
	wantNum(t, mustEval(t, frame, "(/ 2)"), 0.5)
	wantNum(t, mustEval(t, frame, "(/ 12 3 2)"), 2.0)
	wantEvalError(t, evalErr(t, frame, "(/)"))
}

func Test_Builtin_Equal(t *testing.T) {
	frame := NewGlobalFrame()
	wantBool(t, mustEval(t, frame, "(equal? 1 1 1)"), true)
	wantBool(t, mustEval(t, frame, "(equal? 1 2)"), false)
	// Numeric equality crosses the int/float divide.
	wantBool(t, mustEval(t, frame, "(equal? 1 1.0)"), true)
	wantBool(t, mustEval(t, frame, "(equal? #t #t)"), true)
	wantBool(t, mustEval(t, frame, "(equal? (list 1 2) (list 1 2))"), true)
	wantBool(t, mustEval(t, frame, "(equal? (list 1 2) (list 1 3))"), false)
	wantBool(t, mustEval(t, frame, "(equal? () ())"), true)
	wantBool(t, mustEval(t, frame, "(equal? () (list 1))"), false)
}

func Test_Builtin_Chained_Comparisons(t *testing.T) {
	frame := NewGlobalFrame()
	wantBool(t, mustEval(t, frame, "(< 1 2 3)"), true)
	wantBool(t, mustEval(t, frame, "(< 1 3 2)"), false)
	wantBool(t, mustEval(t, frame, "(<= 1 1 2)"), true)
	wantBool(t, mustEval(t, frame, "(> 3 2 1)"), true)
	wantBool(t, mustEval(t, frame, "(>= 3 3 1)"), true)
	wantBool(t, mustEval(t, frame, "(> 1 2)"), false)
	// Every adjacent pair is checked, not just the first.
	wantBool(t, mustEval(t, frame, "(< 1 2 2)"), false)
	wantEvalError(t, evalErr(t, frame, "(< 1 #t)"))
}

func Test_Builtin_Not(t *testing.T) {
	frame := NewGlobalFrame()
	wantBool(t, mustEval(t, frame, "(not #f)"), true)
	wantBool(t, mustEval(t, frame, "(not 1)"), false)
	wantBool(t, mustEval(t, frame, "(not 0)"), true)
	wantBool(t, mustEval(t, frame, "(not ())"), true)
	wantEvalError(t, evalErr(t, frame, "(not)"))
	wantEvalError(t, evalErr(t, frame, "(not 1 2)"))
}

func Test_Builtin_Car_Cdr(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(car (cons 1 2))"), 1)
	wantInt(t, mustEval(t, frame, "(cdr (cons 1 2))"), 2)
	wantIntList(t, mustEval(t, frame, "(cdr (list 1 2 3))"), 2, 3)
	wantEvalError(t, evalErr(t, frame, "(car 5)"))
	wantEvalError(t, evalErr(t, frame, "(cdr ())"))
	wantEvalError(t, evalErr(t, frame, "(car (list 1) (list 2))"))
}

func Test_Builtin_Cons_As_Value(t *testing.T) {
	frame := NewGlobalFrame()
	// cons is also an ordinary binding, usable as a first-class value.
	wantInt(t, mustEval(t, frame, "(car ((lambda (f) (f 1 2)) cons))"), 1)
}

func Test_Builtin_IsList(t *testing.T) {
	frame := NewGlobalFrame()
	wantBool(t, mustEval(t, frame, "(list? ())"), true)
	wantBool(t, mustEval(t, frame, "(list? (list 1 2))"), true)
	wantBool(t, mustEval(t, frame, "(list? (cons 1 2))"), false)
	wantBool(t, mustEval(t, frame, "(list? (cons 1 (cons 2 ())))"), true)
	wantBool(t, mustEval(t, frame, "(list? 7)"), false)
	wantEvalError(t, evalErr(t, frame, "(list?)"))
}

func Test_Builtin_Length(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(length ())"), 0)
	wantInt(t, mustEval(t, frame, "(length (list 1 2 3))"), 3)
	wantEvalError(t, evalErr(t, frame, "(length (cons 1 2))"))
	wantEvalError(t, evalErr(t, frame, "(length 5)"))
}

func Test_Builtin_ListRef(t *testing.T) {
	frame := NewGlobalFrame()
	wantInt(t, mustEval(t, frame, "(list-ref (list 10 20 30) 2)"), 30)
	wantInt(t, mustEval(t, frame, "(list-ref (list 10 20 30) 0)"), 10)
	wantEvalError(t, evalErr(t, frame, "(list-ref (list 10 20 30) 3)"))
	wantEvalError(t, evalErr(t, frame, "(list-ref (list 10) 1.0)"))
	wantEvalError(t, evalErr(t, frame, "(list-ref () 0)"))
	// A lone dotted pair allows index 0 only.
	wantInt(t, mustEval(t, frame, "(list-ref (cons 10 20) 0)"), 10)
	wantEvalError(t, evalErr(t, frame, "(list-ref (cons 10 20) 1)"))
}

func Test_Builtin_Append(t *testing.T) {
	frame := NewGlobalFrame()
	wantIntList(t, mustEval(t, frame, "(append (list 1) (list 2 3))"), 1, 2, 3)
	wantIntList(t, mustEval(t, frame, "(append () (list 1) ())"), 1)
	wantEmpty(t, mustEval(t, frame, "(append)"))
	wantEvalError(t, evalErr(t, frame, "(append (list 1) 2)"))
}

func Test_Builtin_Append_Does_Not_Mutate_Inputs(t *testing.T) {
	frame := NewGlobalFrame()
	mustEval(t, frame, "(define xs (list 1 2))")
	mustEval(t, frame, "(define ys (append xs (list 3)))")
	wantIntList(t, mustEval(t, frame, "xs"), 1, 2)
	wantIntList(t, mustEval(t, frame, "ys"), 1, 2, 3)
}

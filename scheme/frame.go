// frame.go: lexical environments.
//
// A Frame is a mutable name→value mapping with a parent link. The parent
// relation forms a tree rooted at a single frame holding the builtin
// bindings; lookups walk parent-ward, so a name is visible in a frame iff
// it is bound there or in some ancestor. Frames are plain heap values:
// any closure capturing a frame keeps it (and its ancestors) alive, and
// every holder sees mutations made through any other reference. That
// aliasing is the mechanism by which closures observe set! on their
// enclosing scope.
package scheme

import "strings"

// Frame is one lexical scope.
type Frame struct {
	vars   map[string]Value
	parent *Frame
}

// NewFrame creates an empty frame with the given parent (which may be nil).
func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]Value), parent: parent}
}

// NewGlobalFrame returns a fresh, empty global frame parented on a frame
// holding the builtin bindings. Construct one per independent program and
// thread it through sequential Evaluate calls to accumulate definitions.
func NewGlobalFrame() *Frame {
	return NewFrame(newBuiltinFrame())
}

// checkName enforces the binding-name grammar: a name is the same text the
// tokenizer would emit as one atom, so parentheses and embedded whitespace
// are rejected.
func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, "() \t\n\r") {
		return syntaxErrf("invalid variable name %q", name)
	}
	return nil
}

// Define binds name to v in this frame, shadowing any ancestor binding.
// It fails with *SyntaxError when name is not a viable variable name.
func (f *Frame) Define(name string, v Value) error {
	if err := checkName(name); err != nil {
		return err
	}
	f.vars[name] = v
	return nil
}

// Get returns the nearest visible binding for name, walking the chain from
// this frame to the root. Fails with *NameError when the name is unbound.
func (f *Frame) Get(name string) (Value, error) {
	for e := f; e != nil; e = e.parent {
		if v, ok := e.vars[name]; ok {
			return v, nil
		}
	}
	return Value{}, &NameError{Name: name}
}

// Contains reports whether Get would succeed.
func (f *Frame) Contains(name string) bool {
	_, err := f.Get(name)
	return err == nil
}

// Set overwrites the nearest existing binding of name, in whichever frame
// owns it. It never creates a binding: if no frame in the chain binds
// name, Set fails with *NameError.
func (f *Frame) Set(name string, v Value) error {
	for e := f; e != nil; e = e.parent {
		if _, ok := e.vars[name]; ok {
			e.vars[name] = v
			return nil
		}
	}
	return &NameError{Name: name}
}

// Delete removes the binding for name from this exact frame (ancestors are
// not searched) and returns the value it had. Fails with *NameError when
// this frame does not bind name.
func (f *Frame) Delete(name string) (Value, error) {
	if v, ok := f.vars[name]; ok {
		delete(f.vars, name)
		return v, nil
	}
	return Value{}, &NameError{Name: name}
}

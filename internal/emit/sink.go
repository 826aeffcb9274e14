// Package emit defines the EmitSink shared by the four target-language
// emitters (c, cpp, js, wat) and the small helpers common to all of them.
// Each emitter package is otherwise an independent, self-contained walk of
// the bound AST: the repository deliberately duplicates the syntax-directed
// dispatch across backends rather than factoring it behind a shared trait,
// so that a single backend can be edited without risk to the others.
package emit

import "strings"

// Sink is the target-agnostic buffer every emitter writes into. Append is
// the common case; Prepend and Remove exist for backends that need to
// inject content once later output has revealed what the header should
// say (the Wat emitter's module header and interned string data) or to
// un-emit a trailing character (the C, C++ and JS emitters drop the
// newline after an if's closing brace to join its else onto that line).
type Sink struct {
	buf         []byte
	IndentLevel int
}

// NewSink returns an empty sink ready for a single emitter invocation.
func NewSink() *Sink {
	return &Sink{}
}

// Append writes text to the end of the buffer.
func (s *Sink) Append(text string) {
	s.buf = append(s.buf, text...)
}

// Write implements io.Writer so fmt.Fprintf(sink, ...) can target a Sink
// directly; every emitter uses this for the handful of spots (integer and
// float literals, unexpected-node comments) where formatting is easier
// than string concatenation.
func (s *Sink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Prepend inserts text at the beginning of the buffer.
func (s *Sink) Prepend(text string) {
	s.buf = append([]byte(text), s.buf...)
}

// Remove deletes the last n bytes from the buffer. n larger than the
// buffer's length truncates to empty rather than panicking.
func (s *Sink) Remove(n int) {
	if n > len(s.buf) {
		n = len(s.buf)
	}
	s.buf = s.buf[:len(s.buf)-n]
}

// Indent appends a tab for every level of IndentLevel. All four emitters
// call this; the Wat emitter also writes a literal tab before its
// module-level forms and sets IndentLevel itself inside function bodies.
func (s *Sink) Indent() {
	if s.IndentLevel > 0 {
		s.Append(strings.Repeat("\t", s.IndentLevel))
	}
}

// String returns the buffer's contents.
func (s *Sink) String() string {
	return string(s.buf)
}

// Len reports the current buffer length in bytes.
func (s *Sink) Len() int {
	return len(s.buf)
}

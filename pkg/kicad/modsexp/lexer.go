// Package modsexp parses the S-expression dialect used by KiCad footprint
// files (.kicad_mod) into a tree of named nodes. The dialect is deliberately
// small: quoted strings carry no escape sequences (a literal '"' cannot
// appear inside a string) and there is no comment syntax.
package modsexp

import (
	"fmt"
)

// ScanKind classifies the result of a single Scan call.
type ScanKind int

const (
	// ScanToken is an atom: a quoted string or a bareword.
	ScanToken ScanKind = iota
	// ScanListOpen is a '(' introducing a nested list.
	ScanListOpen
	// ScanListClose is a ')' ending the current list. It is a structural
	// marker, not a token.
	ScanListClose
	// ScanEndOfInput means the input was exhausted at a token boundary.
	ScanEndOfInput
)

// ScanResult is the three-way (plus end marker) outcome of Scan.
type ScanResult struct {
	Kind   ScanKind
	Text   string // token text, without surrounding quotes
	Quoted bool   // token came from a quoted string
}

// Scanner walks an in-memory buffer one token at a time. The read cursor
// doubles as the single character of pushback: a delimiter that terminates a
// bareword is simply not consumed.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner creates a scanner over data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Pos returns the current byte offset, for error reporting.
func (s *Scanner) Pos() int {
	return s.pos
}

// Scan returns the next token or structural marker. Running out of input
// inside a quoted string or bareword is ErrUnexpectedEOF; running out at a
// token boundary is a clean ScanEndOfInput.
func (s *Scanner) Scan() (ScanResult, error) {
	s.skipSpace()

	if s.pos >= len(s.data) {
		return ScanResult{Kind: ScanEndOfInput}, nil
	}

	switch s.data[s.pos] {
	case '(':
		s.pos++
		return ScanResult{Kind: ScanListOpen}, nil

	case ')':
		s.pos++
		return ScanResult{Kind: ScanListClose}, nil

	case '"':
		s.pos++
		return s.scanString()

	default:
		return s.scanBareword()
	}
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.data) && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

// scanString consumes bytes up to the next '"'. No escape processing.
func (s *Scanner) scanString() (ScanResult, error) {
	start := s.pos
	for s.pos < len(s.data) {
		if s.data[s.pos] == '"' {
			text := string(s.data[start:s.pos])
			s.pos++
			return ScanResult{Kind: ScanToken, Text: text, Quoted: true}, nil
		}
		s.pos++
	}
	return ScanResult{}, fmt.Errorf("%w: unterminated string starting at offset %d", ErrUnexpectedEOF, start-1)
}

// scanBareword consumes bytes until whitespace or a paren. The terminating
// paren is left unconsumed so the next Scan sees it; terminating whitespace
// is consumed. Input ending mid-bareword is an incomplete token.
func (s *Scanner) scanBareword() (ScanResult, error) {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace(c) {
			text := string(s.data[start:s.pos])
			s.pos++
			return ScanResult{Kind: ScanToken, Text: text}, nil
		}
		if c == '(' || c == ')' {
			return ScanResult{Kind: ScanToken, Text: string(s.data[start:s.pos])}, nil
		}
		s.pos++
	}
	return ScanResult{}, fmt.Errorf("%w: input ended inside token starting at offset %d", ErrUnexpectedEOF, start)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

package docgen

import "strings"

// scanState is the scanner position relative to a comment block.
type scanState int

const (
	stateIdle         scanState = iota // looking for OpenMarker
	stateInComment                     // accumulating body lines
	stateAfterComment                  // next line is the declaration
)

func (s scanState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInComment:
		return "in-comment"
	case stateAfterComment:
		return "after-comment"
	default:
		return "unknown"
	}
}

// scanner holds the state of one scan. A new scanner is used per Scan call.
type scanner struct {
	state     scanState
	body      strings.Builder
	openLine  int
	onWarning func(Warning)
	result    ScanResult
}

// Scan extracts documentation entries from the lines of a source file.
// Format problems are reported as warnings; scanning never fails.
func Scan(lines []string) *ScanResult {
	return scanLines(lines, nil)
}

// ScanString splits src on "\n" and scans the resulting lines.
func ScanString(src string) *ScanResult {
	return Scan(SplitLines(src))
}

// SplitLines splits src on "\n" only. Carriage returns are kept.
func SplitLines(src string) []string {
	return strings.Split(src, "\n")
}

// scanLines runs the state machine over lines.
// onWarning, when non-nil, receives each warning as it is found.
func scanLines(lines []string, onWarning func(Warning)) *ScanResult {
	s := &scanner{state: stateIdle, onWarning: onWarning}
	for i, line := range lines {
		s.step(i+1, line)
	}
	if s.state == stateInComment {
		s.result.UnclosedLine = s.openLine
	}
	return &s.result
}

// step applies one line to the state machine.
func (s *scanner) step(lineNo int, line string) {
	switch s.state {
	case stateIdle:
		if !strings.Contains(line, OpenMarker) {
			return
		}
		if line != OpenMarker {
			s.warn(lineNo, WarnOpenFormat)
		}
		s.body.Reset()
		s.openLine = lineNo
		s.state = stateInComment

	case stateInComment:
		if line == CloseLine {
			s.state = stateAfterComment
			return
		}
		if !strings.HasPrefix(line, ContinuationPrefix) {
			s.warn(lineNo, WarnContinuationFormat)
		}
		s.body.WriteString(LineBreak)
		s.body.WriteString(stripPrefix(line))

	case stateAfterComment:
		kind, name := classify(line)
		s.result.Entries = append(s.result.Entries, Entry{
			Kind:        kind,
			Name:        name,
			Body:        trimLeading(s.body.String()),
			Line:        s.openLine,
			Declaration: line,
		})
		s.state = stateIdle
	}
}

func (s *scanner) warn(lineNo int, msg string) {
	w := Warning{Line: lineNo, Message: msg}
	s.result.Warnings = append(s.result.Warnings, w)
	if s.onWarning != nil {
		s.onWarning(w)
	}
}

// classify derives the entry kind and name from a declaration line.
func classify(decl string) (kind, name string) {
	words := strings.Split(decl, " ")
	first := words[0]

	if first == varKeyword {
		if len(words) > 1 {
			name = words[1]
		}
		return KindConstructor, name
	}

	if !strings.Contains(first, PrototypeMarker) {
		return KindStatic, first
	}
	return KindMethod, strings.ReplaceAll(first, PrototypeMarker, "")
}

// stripPrefix drops the continuation prefix width from line, whatever it holds.
func stripPrefix(line string) string {
	if len(line) < len(ContinuationPrefix) {
		return ""
	}
	return line[len(ContinuationPrefix):]
}

// trimLeading drops the line break that precedes the first body line.
func trimLeading(body string) string {
	if len(body) < len(LineBreak) {
		return ""
	}
	return body[len(LineBreak):]
}

// Package diag implements the diagnostic sink described in spec §6/§7: a
// process-wide, write-only-from-the-analysis-passes error counter and
// message stream. Modeled on the teacher's internal/errors.CompilerError
// (source-context formatting) and internal/semantic/errors.go
// (kind-classified SemanticError), with go.uber.org/multierr combining
// reports into a single returnable error the way
// uber-research/last-diff-analyzer's analyzer.go accumulates scan errors.
package diag

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/aril-lang/arilc/internal/token"
)

// Kind classifies a diagnostic. These are exactly the kinds spec §6 lists as
// used by this core.
type Kind string

const (
	ErrorUnkName   Kind = "UnkName"
	ErrorDupName   Kind = "DupName"
	ErrorInvType   Kind = "InvType"
	ErrorNotTyped  Kind = "NotTyped"
	ErrorNoMeth    Kind = "NoMeth"
	ErrorBadMeth   Kind = "BadMeth"
	ErrorNotFn     Kind = "NotFn"
	ErrorManyArgs  Kind = "ManyArgs"
	ErrorFewArgs   Kind = "FewArgs"
	ErrorNotPublic Kind = "NotPublic"
	ErrorNoInit    Kind = "NoInit"
	ErrorBadImpl   Kind = "BadImpl"
)

// locality classifies whether an error kind stops sibling checks from
// continuing to attempt resolution/typing (spec §7). Every kind in this
// core allows traversal to continue; the table exists so a caller can ask
// "was this name-resolution-kind or type-kind" without a long switch.
var nameResolutionKinds = map[Kind]bool{
	ErrorUnkName:   true,
	ErrorDupName:   true,
	ErrorNotPublic: true,
}

// IsNameResolutionKind reports whether kind originates from the name
// resolution pass (spec §7).
func IsNameResolutionKind(k Kind) bool { return nameResolutionKinds[k] }

// Error is a single structured diagnostic.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Pos.String())
}

// Sink is the diagnostic stream threaded through a single compilation run.
// It is write-only from the analysis passes' perspective (spec §5); reading
// it back (Errors, Err, Count) is only ever done between passes and at the
// end of the driver.
type Sink struct {
	errs      []*Error
	combined  error
	source    string
	file      string
	maxErrors int
	truncated int
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// SetMaxErrors caps how many diagnostics Report records; reports beyond the
// cap are tallied in Truncated but otherwise dropped. Zero (the default)
// means unlimited, mirroring internal/config.Config.MaxErrors' zero value.
func (s *Sink) SetMaxErrors(n int) {
	s.maxErrors = n
}

// Truncated returns how many reports were dropped once the cap set by
// SetMaxErrors was reached.
func (s *Sink) Truncated() int { return s.truncated }

// SetSource attaches the original source text and filename, used only for
// pretty-printing (Format); it has no effect on diagnostics themselves.
func (s *Sink) SetSource(source, file string) {
	s.source = source
	s.file = file
}

// Report records one diagnostic. Each report up to the SetMaxErrors cap
// adds one to Count (spec §6); a report past the cap adds one to Truncated
// instead.
func (s *Sink) Report(pos token.Position, kind Kind, format string, args ...any) {
	if s.maxErrors > 0 && len(s.errs) >= s.maxErrors {
		s.truncated++
		return
	}
	e := &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
	s.errs = append(s.errs, e)
	s.combined = multierr.Append(s.combined, e)
}

// Count returns the total number of diagnostics reported so far.
func (s *Sink) Count() int { return len(s.errs) }

// Errors returns every structured diagnostic reported so far, in report
// order.
func (s *Sink) Errors() []*Error { return s.errs }

// Err returns the combined multierr error, or nil if nothing was reported.
// Use this to return a single error value from a pass boundary.
func (s *Sink) Err() error { return s.combined }

// Format renders every diagnostic with a source-context listing followed by
// a final summary line, mirroring the teacher's errors.FormatErrors.
func (s *Sink) Format() string {
	var sb strings.Builder
	for _, e := range s.errs {
		sb.WriteString(s.formatOne(e))
		sb.WriteString("\n")
	}
	switch len(s.errs) {
	case 0:
		sb.WriteString("0 errors.\n")
	case 1:
		sb.WriteString("1 error.\n")
	default:
		fmt.Fprintf(&sb, "%d errors.\n", len(s.errs))
	}
	if s.truncated > 0 {
		fmt.Fprintf(&sb, "(%d further diagnostics suppressed past the configured limit)\n", s.truncated)
	}
	return sb.String()
}

func (s *Sink) formatOne(e *Error) string {
	var sb strings.Builder
	if s.file != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", s.file, e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: %s: %s\n", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
	}

	line := sourceLine(s.source, e.Pos.Line)
	if line == "" {
		return sb.String()
	}
	prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	col := e.Pos.Column - 1
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+col))
	sb.WriteString("^")
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Formatter renders diagnostics in a Rust-style format with source code snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // Cache of source files by filename

	errorColor   *color.Color
	warningColor *color.Color
	noteColor    *color.Color
	gutterColor  *color.Color
	markColor    *color.Color
}

// NewFormatter creates a diagnostic formatter writing to out. Colour output is
// enabled only when colored is true; callers decide based on the terminal.
func NewFormatter(out io.Writer, colored bool) *Formatter {
	f := &Formatter{
		out:          out,
		sourceCache:  make(map[string]string),
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		noteColor:    color.New(color.FgCyan, color.Bold),
		gutterColor:  color.New(color.FgBlue, color.Bold),
		markColor:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{f.errorColor, f.warningColor, f.noteColor, f.gutterColor, f.markColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// AddSource registers the text of a file so snippets can be shown for it.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// FormatAll renders every diagnostic in the list.
func (f *Formatter) FormatAll(list List) {
	for _, d := range list {
		f.Format(d)
	}
}

// Format renders one diagnostic with a source snippet when the source is known.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, ok := f.sourceCache[d.Span.Filename]
	if !ok || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  %s %s\n", f.gutterColor.Sprint("-->"), d.Span)
		}
		f.printHelp(d)
		return
	}

	f.printSnippet(src, d)
	f.printHelp(d)
}

// FormatShort renders the diagnostic as a single "file:line:col: severity: message" line.
func (f *Formatter) FormatShort(d Diagnostic) {
	fmt.Fprintf(f.out, "%s: %s: %s\n", d.Span, f.severityColor(d.Severity).Sprint(d.Severity), d.Message)
}

func (f *Formatter) severityColor(s Severity) *color.Color {
	switch s {
	case SeverityWarning:
		return f.warningColor
	case SeverityNote:
		return f.noteColor
	default:
		return f.errorColor
	}
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}

	label := string(severity)
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s: %s\n", f.severityColor(severity).Sprint(label), d.Message)
}

// printSnippet prints the offending line with one line of context on each
// side and underlines the span.
func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	line := d.Span.Line
	if line > len(lines) {
		line = len(lines)
	}

	contextStart := max(1, line-1)
	contextEnd := min(len(lines), line+1)
	width := len(fmt.Sprintf("%d", contextEnd))
	pad := strings.Repeat(" ", width)

	fmt.Fprintf(f.out, "%s %s %s\n", pad, f.gutterColor.Sprint("-->"), d.Span)
	fmt.Fprintf(f.out, "%s %s\n", pad, f.gutterColor.Sprint("|"))

	for n := contextStart; n <= contextEnd; n++ {
		content := strings.TrimRight(lines[n-1], "\r")
		fmt.Fprintf(f.out, "%s %s %s\n", f.gutterColor.Sprintf("%*d", width, n), f.gutterColor.Sprint("|"), content)
		if n == line {
			f.printUnderline(pad, content, d.Span)
		}
	}

	fmt.Fprintf(f.out, "%s %s\n", pad, f.gutterColor.Sprint("|"))
}

// printUnderline prints carets under the span. Columns count runes, so the
// marker width is derived from the rune length of the spanned text.
func (f *Formatter) printUnderline(pad, content string, span Span) {
	lineRunes := utf8.RuneCountInString(content)
	start := max(0, span.Column-1)
	if start > lineRunes {
		start = lineRunes
	}

	width := 1
	if span.End > span.Start {
		prefix := content
		if idx := runeOffset(content, start); idx >= 0 {
			prefix = content[idx:]
		}
		width = min(max(1, utf8.RuneCountInString(clipBytes(prefix, span.End-span.Start))), max(1, lineRunes-start))
	}

	marker := strings.Repeat(" ", start) + f.markColor.Sprint(strings.Repeat("^", width))
	fmt.Fprintf(f.out, "%s %s %s\n", pad, f.gutterColor.Sprint("|"), marker)
}

// printHelp prints notes and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "  = help: %s\n", d.Help)
	}
}

func runeOffset(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	if i == n {
		return len(s)
	}
	return -1
}

func clipBytes(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

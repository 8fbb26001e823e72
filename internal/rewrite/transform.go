package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const indentUnit = "    "

var (
	// ErrNoEntryPoint reports that the text contains no fn main() i64
	// declaration to rewrite.
	ErrNoEntryPoint = errors.New("no fn main() i64 declaration found")

	// ErrBodyNotRecognized reports that the entry point was found but its
	// body does not end with the if-return-0 / return-1 pair.
	ErrBodyNotRecognized = errors.New("entry point body does not end with the return-code check")
)

var (
	// Single-line form: the whole body sits on one line and is exactly a
	// condition check. Tried first because it needs no re-indentation.
	simpleEntryPattern = regexp.MustCompile(`fn main\(\) i64 \{ if (.+?) \{ return 0; \} return 1; \}`)

	entryPattern = regexp.MustCompile(`fn main\(\) i64 \{`)

	// Trailing assertion inside a multi-line body. The condition may span
	// lines, so (?s) lets . cross newlines; the anchor binds the match to
	// the end of the trimmed body.
	assertTailPattern = regexp.MustCompile(`(?s)if (.+?) \{ return 0; \}\s*\n?\s*return 1;$`)
)

// Transform rewrites the legacy entry-point construct in text into an
// inline test block carrying label. Text outside the construct is
// copied through untouched. When no entry point exists, or its body
// does not match the return-code pattern, text is returned unchanged
// together with ErrNoEntryPoint or ErrBodyNotRecognized.
func Transform(text, label string) (string, error) {
	if m := simpleEntryPattern.FindStringSubmatchIndex(text); m != nil {
		condition := text[m[2]:m[3]]
		var b strings.Builder
		b.WriteString(text[:m[0]])
		fmt.Fprintf(&b, "test %q {\n%s@assert(%s)\n}", label, indentUnit, condition)
		b.WriteString(text[m[1]:])
		return b.String(), nil
	}

	loc := entryPattern.FindStringIndex(text)
	if loc == nil {
		return text, ErrNoEntryPoint
	}

	// Scan past the body with a brace counter. A plain search for "}"
	// would stop at the first closing brace of an inner block.
	end := scanBody(text, loc[1])
	body := strings.TrimSpace(text[loc[1] : end-1])

	tail := assertTailPattern.FindStringSubmatchIndex(body)
	if tail == nil {
		return text, ErrBodyNotRecognized
	}
	condition := strings.TrimSpace(body[tail[2]:tail[3]])
	setup := strings.TrimSpace(body[:tail[0]])

	var b strings.Builder
	b.WriteString(text[:loc[0]])
	fmt.Fprintf(&b, "test %q {\n", label)
	if setup != "" {
		writeSetup(&b, setup)
	}
	fmt.Fprintf(&b, "%s@assert(%s)\n}", indentUnit, condition)
	b.WriteString(text[end:])
	return b.String(), nil
}

// scanBody returns the position one past the closing brace matching the
// entry point's opening brace. start points just after that opening
// brace, so the counter begins at depth 1.
func scanBody(text string, start int) int {
	depth := 1
	pos := start
	for pos < len(text) && depth > 0 {
		switch text[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}
	return pos
}

// writeSetup re-indents the setup statements one level inside the test
// block. Single pass over the lines: closing braces pull the level down
// before the line is written, a trailing opening brace pushes it up
// after. Assumes at most one net depth change per line; this is a
// best-effort reformatter, not a full re-indenter.
func writeSetup(b *strings.Builder, setup string) {
	level := 1
	for _, line := range strings.Split(setup, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "}") {
			level -= strings.Count(trimmed, "}") - strings.Count(trimmed, "{")
			if level < 1 {
				level = 1
			}
		}
		b.WriteString(strings.Repeat(indentUnit, level))
		b.WriteString(trimmed)
		b.WriteByte('\n')
		if strings.HasSuffix(trimmed, "{") && !strings.HasPrefix(trimmed, "}") {
			level++
		}
	}
}

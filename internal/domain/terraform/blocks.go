// Package terraform implements a lightweight structural scanner for Terraform
// source text. It matches blocks and attributes with brace tracking and line
// patterns, which is all the rule catalog needs; it is not an HCL parser and
// never evaluates expressions.
package terraform

import (
	"regexp"
	"strings"
)

// Block is one `kind "label" ... { ... }` region of a source file.
type Block struct {
	Kind   string
	Labels []string
	Line   int    // 1-based line of the block header
	Body   string // raw text between the braces, outer braces excluded
}

// Attr is a `name = value` assignment at the top level of a block body.
type Attr struct {
	Name  string
	Value string // raw right-hand side, trimmed, comments stripped
	Line  int    // 1-based line within the enclosing file
}

var (
	headerRe = regexp.MustCompile(`^\s*([a-zA-Z_][\w-]*)((?:\s+"[^"]*")*)\s*\{`)
	labelRe  = regexp.MustCompile(`"([^"]*)"`)
	attrRe   = regexp.MustCompile(`^\s*([a-zA-Z_][\w-]*)\s*=\s*(.+)$`)
)

// ParseBlocks returns the top-level blocks of src in source order.
func ParseBlocks(src string) []Block {
	return parseBlocks(src, 1)
}

func parseBlocks(src string, firstLine int) []Block {
	var blocks []Block
	lines := strings.Split(src, "\n")

	depth := 0
	var current *Block
	var bodyLines []string
	startDepth := 0

	for i, raw := range lines {
		line := StripComments(raw)
		opens, closes := countBraces(line)

		if current == nil && depth == 0 {
			if m := headerRe.FindStringSubmatch(line); m != nil && !assignsBeforeBrace(line) {
				current = &Block{
					Kind: m[1],
					Line: firstLine + i,
				}
				for _, lm := range labelRe.FindAllStringSubmatch(m[2], -1) {
					current.Labels = append(current.Labels, lm[1])
				}
				startDepth = depth
				bodyLines = nil

				// Single-line block: variable "x" { type = string }
				if depth+opens-closes == startDepth {
					open := strings.Index(raw, "{")
					close := strings.LastIndex(raw, "}")
					if open >= 0 && close > open {
						current.Body = raw[open+1 : close]
					}
					blocks = append(blocks, *current)
					current = nil
					continue
				}

				depth += opens - closes
				continue
			}
		}

		depth += opens - closes

		if current != nil {
			if depth <= startDepth {
				current.Body = strings.Join(bodyLines, "\n")
				blocks = append(blocks, *current)
				current = nil
				continue
			}
			bodyLines = append(bodyLines, raw)
		}
	}

	// Unterminated block: keep what we have rather than dropping it.
	if current != nil {
		current.Body = strings.Join(bodyLines, "\n")
		blocks = append(blocks, *current)
	}

	return blocks
}

// Attrs returns the depth-zero attribute assignments of the block body.
// Attributes inside nested blocks or object literals are excluded.
func (b Block) Attrs() []Attr {
	var attrs []Attr
	depth := 0
	for i, raw := range strings.Split(b.Body, "\n") {
		line := StripComments(raw)
		if depth == 0 {
			if m := attrRe.FindStringSubmatch(line); m != nil {
				attrs = append(attrs, Attr{
					Name:  m[1],
					Value: strings.TrimSpace(m[2]),
					Line:  b.Line + 1 + i,
				})
			}
		}
		opens, closes := countBraces(line)
		depth += opens - closes
		if depth < 0 {
			depth = 0
		}
	}
	return attrs
}

// Attr returns the named depth-zero attribute, if present.
func (b Block) Attr(name string) (Attr, bool) {
	for _, a := range b.Attrs() {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Nested returns the nested blocks of the given kind directly inside the body.
func (b Block) Nested(kind string) []Block {
	var out []Block
	for _, nb := range parseBlocks(b.Body, b.Line+1) {
		if nb.Kind == kind {
			out = append(out, nb)
		}
	}
	return out
}

// HasNested reports whether a nested block of the given kind exists.
func (b Block) HasNested(kind string) bool {
	return len(b.Nested(kind)) > 0
}

// assignsBeforeBrace distinguishes `tags = {` object literals from blocks.
func assignsBeforeBrace(line string) bool {
	brace := strings.Index(line, "{")
	if brace < 0 {
		return false
	}
	return strings.Contains(line[:brace], "=")
}

// countBraces counts braces outside of string literals.
func countBraces(line string) (opens, closes int) {
	inString := false
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case !inString && r == '{':
			opens++
		case !inString && r == '}':
			closes++
		}
	}
	return opens, closes
}

// StripComments removes `#`, `//`, and trailing `/* */` comments that start
// outside string literals. Multi-line comments are not tracked; the rule
// catalog only inspects single lines.
func StripComments(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '#':
			return line[:i]
		case !inString && c == '/' && i+1 < len(line) && (line[i+1] == '/' || line[i+1] == '*'):
			return line[:i]
		}
	}
	return line
}

var disableRe = regexp.MustCompile(`#\s*tfconform:disable=([\w,-]+)`)

// DisabledRules parses a trailing `#tfconform:disable=a,b` marker on a source
// line and returns the disabled rule ids.
func DisabledRules(line string) map[string]bool {
	m := disableRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	out := make(map[string]bool)
	for _, id := range strings.Split(m[1], ",") {
		if id = strings.TrimSpace(id); id != "" {
			out[id] = true
		}
	}
	return out
}

// Line returns the 1-based source line of a file's content, or "".
func Line(content string, n int) string {
	lines := strings.Split(content, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// dotWriter remembers the first write error so rendering code can print
// unconditionally and check once at the end.
type dotWriter struct {
	w     io.Writer
	style Style
	err   error
}

func newDotWriter(w io.Writer, style Style) *dotWriter {
	return &dotWriter{w: w, style: style}
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dotWriter) line(s string) {
	d.printf("%s\n", s)
}

// recordNode declares a boxed node showing a name and its class.
func (d *dotWriter) recordNode(id, name, class, color string) {
	d.printf("%s [shape=record, style=%s, fillcolor=%s, color=%s,label=%s]\n",
		id, d.style.NodeStyle, d.style.FillColor, color, d.nameClassLabel(name, class))
}

func (d *dotWriter) nameClassLabel(name, class string) string {
	return fmt.Sprintf(`<<TABLE border="0" cellborder="0"><TR><TD width="60" height="60"><font point-size="%d">%s <BR/>(%s)</font></TD></TR></TABLE>>`,
		d.style.FontSize, escapeHTML(name), escapeHTML(class))
}

// quote renders s as a quoted DOT identifier.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// escapeHTML makes s safe inside an HTML-like label.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// clusterID joins parts with `_` and maps every character outside
// [A-Za-z0-9_] to `_`, giving an unquoted identifier Graphviz accepts.
func clusterID(parts ...string) string {
	joined := strings.Join(parts, "_")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, joined)
}

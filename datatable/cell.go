package datatable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const missingCell = "-"

// statusTone classifies the known status vocabulary, including the
// Arabic equivalents the dashboard's API returns.
func statusTone(value string) (good bool, known bool) {
	switch strings.TrimSpace(value) {
	case "true", "Active", "Paid", "نشط", "مدفوع":
		return true, true
	case "false", "Inactive", "Unpaid", "غير نشط", "غير مدفوع":
		return false, true
	}
	return false, false
}

// RenderCell produces the display string for one cell. A panicking
// custom renderer is contained to that cell: the row keeps rendering
// and the cell falls back to the placeholder.
func RenderCell(col Column, row Row, st Styles) (out string) {
	defer func() {
		if recover() != nil {
			out = missingCell
		}
	}()

	value, ok := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	if !ok || value == nil {
		return missingCell
	}

	switch col.Type {
	case TypeStatus:
		return renderStatus(value, st)
	case TypeColor:
		return renderSwatch(value)
	case TypeImage:
		return st.ImageToken.Render("[img] " + imageName(value))
	case TypeLink:
		return st.Link.Render(valueString(value))
	case TypeNumber:
		if n, isNum := valueNumber(value); isNum {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return valueString(value)
	default:
		text := valueString(value)
		if text == "" {
			return missingCell
		}
		return text
	}
}

func renderStatus(value any, st Styles) string {
	text := valueString(value)
	good, known := statusTone(text)
	switch {
	case known && good:
		return st.BadgeGood.Render(text)
	case known:
		return st.BadgeBad.Render(text)
	default:
		return st.BadgeNeutral.Render(text)
	}
}

const swatchWidth = 6

// renderSwatch paints a color cell: a solid bar for a single hex value,
// a stop-to-stop blend for exactly two, equal slices for three or more.
func renderSwatch(value any) string {
	colors := colorList(value)
	if len(colors) == 0 {
		return missingCell
	}
	var b strings.Builder
	for i := 0; i < swatchWidth; i++ {
		var hex string
		switch {
		case len(colors) == 1:
			hex = colors[0]
		case len(colors) == 2:
			hex = blendHex(colors[0], colors[1], float64(i)/float64(swatchWidth-1))
		default:
			idx := i * len(colors) / swatchWidth
			if idx >= len(colors) {
				idx = len(colors) - 1
			}
			hex = colors[idx]
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
	}
	return b.String()
}

func colorList(value any) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, valueString(item))
		}
		return out
	}
	return nil
}

func blendHex(from, to string, t float64) string {
	fr, fg, fb, okF := parseHex(from)
	tr, tg, tb, okT := parseHex(to)
	if !okF || !okT {
		if t < 0.5 {
			return from
		}
		return to
	}
	mix := func(a, b int) int { return a + int(float64(b-a)*t) }
	return fmt.Sprintf("#%02x%02x%02x", mix(fr, tr), mix(fg, tg), mix(fb, tb))
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), true
}

func imageName(value any) string {
	src := valueString(value)
	if idx := strings.LastIndexByte(src, '/'); idx >= 0 && idx < len(src)-1 {
		return src[idx+1:]
	}
	return src
}

// ExportValue is the plain (unstyled) serialization of a cell used by
// the CSV and XLSX writers.
func ExportValue(col Column, row Row) string {
	value, ok := row[col.Key]
	if !ok || value == nil {
		return ""
	}
	return valueString(value)
}

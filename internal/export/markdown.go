package export

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// Markdown writes a document with a heading, a count line and one table row
// per palette.
func Markdown(w io.Writer, records []palette.Record, title string) error {
	if _, err := io.WriteString(w, markdownDoc(records, title, false)); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// HTML renders the Markdown document, with a color chip before each code
// span, into a standalone page.
func HTML(w io.Writer, records []palette.Record, title string) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(markdownDoc(records, title, true)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	if _, err := fmt.Fprintf(w, pageLayout, stdhtml.EscapeString(title), body.String()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

const pageLayout = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { padding: .3rem .6rem; border-bottom: 1px solid #ddd; text-align: left; }
.chip { display: inline-block; width: 1em; height: 1em; border-radius: 2px; vertical-align: middle; margin-right: .2em; }
</style>
</head>
<body>
%s</body>
</html>
`

func markdownDoc(records []palette.Record, title string, chips bool) string {
	var b strings.Builder
	colors := lo.SumBy(records, func(r palette.Record) int { return r.Len() })

	// The HTML renderer passes raw HTML through for the chips, so the
	// title must not carry any of its own.
	if chips {
		title = stdhtml.EscapeString(title)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%d palettes, %d colors\n\n", len(records), colors)
	if len(records) == 0 {
		return b.String()
	}

	b.WriteString("| ID | Colors | Count |\n")
	b.WriteString("|----|--------|------:|\n")
	for _, r := range records {
		cells := lo.Map(r.Colors, func(c string, _ int) string {
			cell := codeSpan(c)
			if chips {
				cell = chip(c) + cell
			}
			return cell
		})
		fmt.Fprintf(&b, "| %s | %s | %d |\n", r.ID, strings.Join(cells, " "), r.Len())
	}
	return b.String()
}

// codeSpan wraps a raw color token so it survives inside a table cell.
func codeSpan(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

// chip returns an inline swatch for a well-formed color. Malformed tokens get
// no chip so nothing unescaped reaches the style attribute.
func chip(color string) string {
	if _, ok := theme.Luma(color); !ok {
		return ""
	}
	return fmt.Sprintf(`<span class="chip" style="background:%s"></span>`, color[:7])
}

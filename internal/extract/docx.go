package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// docxText returns the text of every body paragraph, non-empty paragraphs joined by spaces.
// Tables, drawings and hyperlink targets are skipped.
func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var out []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := paragraphText(p); text != "" {
			out = append(out, text)
		}
	}
	return strings.Join(out, " "), nil
}

// paragraphText concatenates the runs of p. Tabs and breaks become spaces.
func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRun(&sb, c)
		case *docx.Hyperlink:
			writeRun(&sb, &c.Run)
		}
	}
	return strings.TrimSpace(sb.String())
}

func writeRun(sb *strings.Builder, r *docx.Run) {
	for _, child := range r.Children {
		switch c := child.(type) {
		case *docx.Text:
			sb.WriteString(c.Text)
		case *docx.Tab, *docx.BarterRabbet:
			sb.WriteByte(' ')
		}
	}
}

package srn

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// titleParser is shared across calls; goldmark parsers are stateless.
var titleParser = goldmark.New()

// Title extracts a display title from markdown content: the first
// level-1 heading, else the first level-2 heading, else "". Shown next
// to the note ID when a session presents a note.
func Title(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	doc := titleParser.Parser().Parse(gmtext.NewReader(content))

	var firstH1, firstH2 string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		text := headingText(heading, content)
		switch {
		case heading.Level == 1 && firstH1 == "":
			firstH1 = text
			return ast.WalkStop, nil
		case heading.Level == 2 && firstH2 == "":
			firstH2 = text
		}
		return ast.WalkContinue, nil
	})

	if firstH1 != "" {
		return firstH1
	}
	return firstH2
}

// headingText collects the plain text of a heading's children.
func headingText(n ast.Node, content []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(content))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

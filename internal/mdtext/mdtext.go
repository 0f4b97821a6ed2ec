// Package mdtext turns markdown into the plain prose a reader sees, so
// markup characters do not skew word and syllable counts.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText parses source as markdown and returns its prose. Code blocks
// and raw HTML are dropped; links and images keep their visible text.
// Each paragraph, heading and list item ends up on its own line.
func PlainText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				endLine(&sb)
			}

		case *ast.Text:
			if entering {
				sb.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteByte(' ')
				}
			}

		case *ast.String:
			if entering {
				sb.Write(node.Value)
			}

		case *ast.AutoLink:
			if entering {
				sb.Write(node.Label(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}

// endLine terminates the current block, trimming spaces left by line
// breaks. Empty blocks add nothing.
func endLine(sb *strings.Builder) {
	s := strings.TrimRight(sb.String(), " ")
	sb.Reset()
	sb.WriteString(s)
	if s != "" && !strings.HasSuffix(s, "\n") {
		sb.WriteByte('\n')
	}
}

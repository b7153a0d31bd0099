package markdown

import (
	gomd "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func parse(md string) ast.Node {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	return p.Parse([]byte(md))
}

// ToHTML renders a generated document, e.g. for a preview in the terminal or browser.
func ToHTML(md string) []byte {
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return gomd.Render(parse(md), r)
}

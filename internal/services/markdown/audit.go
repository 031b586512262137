package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CountRemoteImages parses text as CommonMark and counts image nodes that
// still point at an http(s) destination.
func CountRemoteImages(source string) int {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindImage {
			return ast.WalkContinue, nil
		}
		if isRemote(string(n.(*ast.Image).Destination)) {
			count++
		}
		return ast.WalkContinue, nil
	})

	return count
}

func isRemote(destination string) bool {
	lower := strings.ToLower(destination)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

package convert

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/edforge/qconvert/internal/question"
)

// partExplanation computes the explanation scoped to one part (1-based
// index). For a single-part document the whole whitespace-normalized root
// answer is the explanation. For a multi-part document the answer is
// expected to be one wrapping <div> with one child <div> per part, in part
// order; the matching child is serialized back to a fragment. Malformed
// authoring degrades to nil rather than failing conversion: the
// pre-validator already reports the malformed container for multi-part
// documents.
func partExplanation(rootAnswer any, numParts, partIndex int) *string {
	answer, ok := rootAnswer.(string)
	if !ok || question.IsEmpty(answer) {
		return nil
	}

	if numParts == 1 {
		s := question.NormalizeSpace(answer)
		return &s
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(answer), ctx)
	if err != nil {
		return nil
	}

	var elements []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	if len(elements) != 1 || elements[0].Data != "div" {
		return nil
	}

	var divs []*html.Node
	for c := elements[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" {
			divs = append(divs, c)
		}
	}
	if partIndex < 1 || partIndex > len(divs) {
		return nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, divs[partIndex-1]); err != nil {
		return nil
	}
	s := buf.String()
	return &s
}

package prevalidate

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/edforge/qconvert/internal/question"
)

// validateRootExplanation checks the shape of the root 'answer' HTML
// fragment. Single-part documents expect one <p> (warnings only);
// multi-part documents expect one wrapping <div> with one child <div> per
// part (blocking errors).
func validateRootExplanation(doc question.Document) (errors, warnings []string) {
	explanation, ok := doc["answer"].(string)
	if !ok || question.IsEmpty(explanation) {
		return nil, nil
	}
	numParts := len(doc.Parts())

	children, err := topLevelElements(explanation)
	if err != nil {
		return []string{fmt.Sprintf("Error parsing root 'answer' field as HTML: %v", err)}, nil
	}

	switch {
	case numParts == 1:
		if len(children) != 1 {
			warnings = append(warnings, fmt.Sprintf(
				"Root 'answer' field for single-part question must contain exactly one <p> tag, but found %d top-level elements", len(children)))
		} else if children[0].Data != "p" {
			warnings = append(warnings, fmt.Sprintf(
				"Root 'answer' field for single-part question must contain a <p> tag, but found <%s>", children[0].Data))
		}
	case numParts > 1:
		if len(children) != 1 {
			errors = append(errors, fmt.Sprintf(
				"Root 'answer' field for multipart question must contain exactly one parent <div>, but found %d top-level elements", len(children)))
		} else if children[0].Data != "div" {
			errors = append(errors, fmt.Sprintf(
				"Root 'answer' field for multipart question must contain a parent <div>, but found <%s>", children[0].Data))
		} else if divs := childDivs(children[0]); len(divs) != numParts {
			errors = append(errors, fmt.Sprintf(
				"Root 'answer' field for multipart question must have %d direct child <div>s (one per part), but found %d", numParts, len(divs)))
		}
	}

	return errors, warnings
}

// topLevelElements parses s as a body fragment and returns its element
// nodes, skipping text and comments.
func topLevelElements(s string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, err
	}
	var elements []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	return elements, nil
}

// childDivs returns the direct <div> children of n.
func childDivs(n *html.Node) []*html.Node {
	var divs []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "div" {
			divs = append(divs, c)
		}
	}
	return divs
}

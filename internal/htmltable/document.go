// Package htmltable exposes the tables of a parsed HTML document to the sorter.
package htmltable

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"tablesort/internal/model"
	"tablesort/internal/sorter"
)

const whiteSpaceChars = " \n\t\r\f"

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// Render writes the document, including any reordering done since Parse.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// Table implements sorter.Resolver. Any element carrying the id works, as
// long as it holds at least a header row.
func (d *Document) Table(id string) (sorter.TableView, bool) {
	t, ok := d.Lookup(id)
	if !ok {
		return nil, false
	}
	return t, true
}

// Lookup returns the table element with the given id.
func (d *Document) Lookup(id string) (*Table, bool) {
	if id == "" {
		return nil, false
	}
	nodes := findNodes(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	if len(nodes) == 0 {
		return nil, false
	}
	t := newTable(id, nodes[0])
	if t.header == nil {
		return nil, false
	}
	return t, true
}

// IDs lists the ids of every <table> element in document order.
func (d *Document) IDs() []string {
	var ids []string
	for _, n := range findNodes(d.root, isElement("table")) {
		if id := attr(n, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Models snapshots every identified table into an in-memory model.
func (d *Document) Models() []*model.Table {
	var tables []*model.Table
	for _, id := range d.IDs() {
		t, ok := d.Lookup(id)
		if !ok {
			continue
		}
		m := model.NewTable(id, t.Header(), t.Records())
		if caption := t.Caption(); caption != "" {
			m.Title = caption
		}
		tables = append(tables, m)
	}
	return tables
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findNodes collects matches depth first. Unlike a search for one result it
// keeps descending into matched nodes, like getElementsByTagName.
func findNodes(node *html.Node, want func(*html.Node) bool) []*html.Node {
	var results []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if want(child) {
			results = append(results, child)
		}
		results = append(results, findNodes(child, want)...)
	}
	return results
}

func collectText(node *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return strings.Trim(sb.String(), whiteSpaceChars)
}

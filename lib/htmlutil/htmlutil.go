package htmlutil

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("sdamgia.lib.htmlutil")

func walkText(node *html.Node, buffer *bytes.Buffer, trim bool) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		segment := node.Data
		if trim {
			segment = strings.TrimSpace(segment)
		}
		buffer.WriteString(segment)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkText(child, buffer, trim)
	}
}

// GetText concatenates every text segment below node as-is.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	walkText(node, &buffer, false)
	return buffer.String()
}

// GetStrippedText trims every text segment below node and concatenates
// the non-empty remainders without a separator.
func GetStrippedText(node *html.Node) string {
	var buffer bytes.Buffer
	walkText(node, &buffer, true)
	return buffer.String()
}

// ReplaceWithText swaps node for a bare text node carrying text.
// Nodes without a parent are left alone.
func ReplaceWithText(node *html.Node, text string) {
	if node == nil || node.Parent == nil {
		return
	}
	textNode := &html.Node{
		Type: html.TextNode,
		Data: text,
	}
	node.Parent.InsertBefore(textNode, node)
	node.Parent.RemoveChild(node)
}

type Anchor struct {
	Name string
	Href string
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// cleanAnchorName flattens an anchor's text down to a single printable
// line.
func cleanAnchorName(node *html.Node) string {
	var printable strings.Builder
	for _, c := range GetText(node) {
		if unicode.IsPrint(c) {
			printable.WriteRune(c)
		}
	}
	name := strings.TrimSpace(printable.String())
	return innerWhitespace.ReplaceAllString(name, " ")
}

func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	_, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	sel.Each(func(_ int, s *goquery.Selection) {
		link, err := url.Parse(s.AttrOr("href", ""))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "got error while parsing url")
			return
		}

		name := cleanAnchorName(s.Nodes[0])
		linkStr := link.String()
		anchors = append(anchors, Anchor{
			Name: name,
			Href: linkStr,
		})
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("name", name),
			attribute.String("url", linkStr),
		))
	})

	return anchors
}

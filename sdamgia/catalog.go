package sdamgia

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// Catalog returns the topic and category tree of the scope's subject.
func (c *Client) Catalog(ctx context.Context, opts ...CallOption) ([]CatalogEntry, error) {
	ctx, span := tracer.Start(ctx, "client:Catalog")
	defer span.End()

	scope := c.callScope(opts)
	doc, err := c.document(ctx, scope, "/prob_catalog", nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch catalog page")
		return nil, err
	}

	// topic blocks carry no data-id, that attribute marks the nested
	// category blocks
	var topics []*goquery.Selection
	doc.Find(selCatalogCategory).Each(func(_ int, block *goquery.Selection) {
		_, isCategory := block.Attr(attrCategoryID)
		if !isCategory {
			topics = append(topics, block)
		}
	})
	if len(topics) > 0 {
		// the first id-less block is the page scaffold, not a topic
		topics = topics[1:]
	}

	entries := []CatalogEntry{}
	for _, topic := range topics {
		label := topic.Find(selCatalogName).First().Text()
		topicID, topicName, found := strings.Cut(label, ". ")
		if !found {
			slog.WarnContext(ctx, "skipping catalog block with unexpected label", "label", label)
			continue
		}
		topicID = trimTopicID(topicID)

		categories := []Category{}
		topic.Find(selCatalogChildren).First().Find(selCatalogCategory).Each(func(_ int, child *goquery.Selection) {
			categories = append(categories, Category{
				ID:   child.AttrOr(attrCategoryID, ""),
				Name: child.Find(selCategoryName).First().Text(),
			})
		})

		entries = append(entries, CatalogEntry{
			TopicID:    topicID,
			TopicName:  topicName,
			Categories: categories,
		})
	}
	return entries, nil
}

// trimTopicID cleans the raw topic id segment: ids rendered with a
// marker prefix (" Д16", "Задания Д1") lose it, plain numbers pass
// through.
func trimTopicID(id string) string {
	if strings.HasPrefix(id, " ") {
		runes := []rune(id)
		if len(runes) < 2 {
			return ""
		}
		id = string(runes[2:])
	}
	return strings.TrimPrefix(id, "Задания ")
}

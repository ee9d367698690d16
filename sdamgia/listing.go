package sdamgia

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// listingIDs extracts the numeric problem ids from the listing labels
// of a search or test page. An unparsable label aborts the extraction.
func listingIDs(doc *goquery.Document) ([]int, error) {
	ids := []int{}
	var parseErr error
	doc.Find(selProblemNums).EachWithBreak(func(_ int, label *goquery.Selection) bool {
		fields := strings.Fields(label.Text())
		if len(fields) == 0 {
			parseErr = fmt.Errorf("problem listing label is empty")
			return false
		}
		id, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			parseErr = fmt.Errorf("parse problem listing label %q: %w", label.Text(), err)
			return false
		}
		ids = append(ids, id)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return ids, nil
}

// collectPages walks a paginated listing starting at page 1 and stops
// at the first page without ids. Ids are concatenated in page order,
// without deduplication.
func (c *Client) collectPages(ctx context.Context, scope Scope, path string, query url.Values) ([]int, error) {
	collected := []int{}
	for page := 1; ; page++ {
		pageQuery := url.Values{}
		for k, v := range query {
			pageQuery[k] = v
		}
		pageQuery.Set("page", strconv.Itoa(page))

		doc, err := c.document(ctx, scope, path, pageQuery)
		if err != nil {
			return nil, err
		}
		ids, err := listingIDs(doc)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}
		collected = append(collected, ids...)
		slog.DebugContext(ctx, "collected listing page", "page", page, "count", len(ids))
	}
	slog.DebugContext(ctx, "finished listing crawl", "total", len(collected))
	return collected, nil
}

// Search returns the ids of every problem matching the query, across
// all result pages.
func (c *Client) Search(ctx context.Context, query string, opts ...CallOption) ([]int, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	scope := c.callScope(opts)
	ids, err := c.collectPages(ctx, scope, "/search", url.Values{"search": {query}})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search crawl failed")
		return nil, err
	}
	return ids, nil
}

// TestProblems returns the ids of the problems a generated test
// consists of.
func (c *Client) TestProblems(ctx context.Context, testID int, opts ...CallOption) ([]int, error) {
	ctx, span := tracer.Start(ctx, "client:TestProblems")
	defer span.End()

	scope := c.callScope(opts)
	doc, err := c.document(ctx, scope, "/test", url.Values{"id": {strconv.Itoa(testID)}})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch test page")
		return nil, err
	}
	ids, err := listingIDs(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse test page")
		return nil, err
	}
	return ids, nil
}

// ThemeProblems returns the listing labels of every problem under a
// theme, across all pages. The site renders these as prefixed labels
// rather than bare numbers, so they stay strings.
func (c *Client) ThemeProblems(ctx context.Context, themeID int, opts ...CallOption) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ThemeProblems")
	defer span.End()

	scope := c.callScope(opts)
	labels := []string{}
	for page := 1; ; page++ {
		slog.InfoContext(ctx, "getting theme page", "theme", themeID, "page", page)
		doc, err := c.document(ctx, scope, "/test", url.Values{
			"theme": {strconv.Itoa(themeID)},
			"page":  {strconv.Itoa(page)},
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "theme crawl failed")
			return nil, err
		}

		nums := doc.Find(selProblemNums)
		if nums.Length() == 0 {
			break
		}
		nums.Each(func(_ int, label *goquery.Selection) {
			labels = append(labels, label.Find(selAnchor).First().Text())
		})
	}
	return labels, nil
}

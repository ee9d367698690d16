package sdamgia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

// GenerateTest asks the service to assemble a test from the selection
// and returns the generated test id. The zero selection takes one
// problem from every catalog topic.
func (c *Client) GenerateTest(ctx context.Context, selection TestSelection, opts ...CallOption) (int, error) {
	ctx, span := tracer.Start(ctx, "client:GenerateTest")
	defer span.End()

	scope := c.callScope(opts)

	if selection.Full == 0 && len(selection.Topics) == 0 {
		selection.Full = 1
	}

	query := url.Values{"a": {"generate"}}
	if selection.Full > 0 {
		// the topic count comes from a fresh catalog fetch
		catalog, err := c.Catalog(ctx, opts...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch catalog for full selection")
			return 0, err
		}
		for i := 1; i <= len(catalog); i++ {
			query.Set(fmt.Sprintf("prob%d", i), strconv.Itoa(selection.Full))
		}
	} else {
		for topic, count := range selection.Topics {
			query.Set(fmt.Sprintf("prob%d", topic), strconv.Itoa(count))
		}
	}

	location, err := c.fetchRedirectLocation(ctx, scope, "/test", query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to generate test")
		return 0, err
	}

	_, after, found := strings.Cut(location, "id=")
	if !found {
		return 0, fmt.Errorf("no test id in redirect location %q", location)
	}
	idText, _, _ := strings.Cut(after, "&nt")
	id, err := strconv.Atoi(idText)
	if err != nil {
		return 0, fmt.Errorf("parse test id from redirect location %q: %w", location, err)
	}
	return id, nil
}

// GeneratePDF asks the service to render a generated test as a pdf
// document and returns the absolute document url.
func (c *Client) GeneratePDF(ctx context.Context, testID int, options PDFOptions, opts ...CallOption) (string, error) {
	ctx, span := tracer.Start(ctx, "client:GeneratePDF")
	defer span.End()

	scope := c.callScope(opts)

	query := url.Values{
		"id":    {strconv.Itoa(testID)},
		"print": {"true"},
		"pdf":   {string(options.Layout)},
		"sol":   {boolFlag(options.Solutions)},
		"num":   {boolFlag(options.ProblemNums)},
		"ans":   {boolFlag(options.Answers)},
		"key":   {boolFlag(options.AnswerKey)},
		"crit":  {boolFlag(options.Criteria)},
		"pre":   {boolFlag(options.Instruction)},
		"dcol":  {options.Footer},
		"tt":    {options.Title},
	}

	location, err := c.fetchRedirectLocation(ctx, scope, "/test", query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to generate pdf")
		return "", err
	}

	base, err := c.scopeBase(scope)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse redirect location %q: %w", location, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// the print endpoint expects capitalized flag values
func boolFlag(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

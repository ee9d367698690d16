package sdamgia

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/dinaprk/sdamgia-api/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// Problem fetches one problem page and extracts it into a typed
// record. When recognize is set, condition and solution transcripts
// are produced by running the page's formula images through the
// recognition backend; otherwise the transcripts stay empty.
//
// A page without the main problem block fails with ErrProblemNotFound.
// Missing sub-fields (topic label, condition, solution, answer,
// analogs) degrade to zero values instead of failing the call.
func (c *Client) Problem(ctx context.Context, problemID int, recognize bool, opts ...CallOption) (Problem, error) {
	ctx, span := tracer.Start(ctx, "client:Problem")
	defer span.End()

	if recognize && c.recognizer == nil {
		return Problem{}, ErrRecognitionUnavailable
	}

	scope := c.callScope(opts)
	doc, err := c.document(ctx, scope, "/problem", url.Values{"id": {strconv.Itoa(problemID)}})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch problem page")
		return Problem{}, err
	}

	container := doc.Find(selProblemContainer).First()
	if container.Length() == 0 {
		return Problem{}, ErrProblemNotFound
	}

	c.absolutizeImages(ctx, scope, container)

	problem := Problem{
		GiaType:   scope.GiaType,
		Subject:   scope.Subject,
		ID:        problemID,
		TopicID:   parseTopicID(ctx, container),
		AnalogIDs: parseAnalogIDs(ctx, container, problemID),
	}

	condition := doc.Find(selProblemBody).First()
	if condition.Length() > 0 {
		problem.Condition, err = c.problemPart(ctx, scope, condition, recognize)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract condition")
			return Problem{}, err
		}
	}

	solution := container.Find(selSolution).First()
	if solution.Length() == 0 {
		// older pages render the solution as a second body block
		solution = container.Find(selProblemBody).Eq(1)
	}
	if solution.Length() > 0 {
		problem.Solution, err = c.problemPart(ctx, scope, solution, recognize)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract solution")
			return Problem{}, err
		}
	}

	answer := container.Find(selAnswer).First()
	if answer.Length() > 0 {
		problem.Answer = strings.TrimSpace(strings.TrimPrefix(answer.Text(), "Ответ:"))
	}

	return problem, nil
}

// absolutizeImages rewrites relative image sources inside the problem
// block against the scope's base url. Sources already pointing at the
// problem database domain stay untouched.
func (c *Client) absolutizeImages(ctx context.Context, scope Scope, container *goquery.Selection) {
	base, err := c.scopeBase(scope)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse scope base url", "err", err)
		return
	}
	container.Find(selImage).Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr(attrImageSource)
		if !ok || strings.Contains(src, baseDomain) {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed image source", "src", src, "err", err)
			return
		}
		img.SetAttr(attrImageSource, base.ResolveReference(ref).String())
	})
}

// parseTopicID reads the topic number out of the "Задание N № ..."
// label. Pages without a parsable label yield nil.
func parseTopicID(ctx context.Context, container *goquery.Selection) *int {
	label := container.Find(selProblemNums).First().Text()
	fields := strings.Fields(label)
	if len(fields) < 2 {
		slog.WarnContext(ctx, "problem page carries no topic label", "label", label)
		return nil
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		slog.WarnContext(ctx, "failed to parse topic id", "label", label, "err", err)
		return nil
	}
	return &id
}

// parseAnalogIDs collects the ids of the related problems cross-linked
// on the page, ascending, without the problem itself.
func parseAnalogIDs(ctx context.Context, container *goquery.Selection, problemID int) []int {
	ids := []int{}
	anchors := htmlutil.GetAnchors(ctx, container.Find(selAnalogBlock).First().Find(selAnchor))
	for _, anchor := range anchors {
		id, err := strconv.Atoi(strings.ReplaceAll(anchor.Href, "/problem?id=", ""))
		if err != nil || id == problemID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

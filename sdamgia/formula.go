package sdamgia

import (
	"context"
	"fmt"
	"image"
	"net/url"

	"github.com/dinaprk/sdamgia-api/lib/htmlutil"
	"github.com/dinaprk/sdamgia-api/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// problemPart extracts one condition or solution fragment. Formula
// image urls come first in ImageLinks, in document order and deduped,
// followed by the fragment's remaining images. With recognize set,
// every formula image node is substituted by its recognized text
// before the transcript is read off the fragment.
func (c *Client) problemPart(ctx context.Context, scope Scope, sel *goquery.Selection, recognize bool) (*ProblemPart, error) {
	seen := map[string]bool{}
	imageLinks := []string{}
	sel.Find(selFormulaImage).Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr(attrImageSource)
		if !ok || seen[src] {
			return
		}
		seen[src] = true
		imageLinks = append(imageLinks, src)
	})

	text := ""
	if recognize {
		recognized, err := c.recognizeFormulas(ctx, scope, imageLinks)
		if err != nil {
			return nil, err
		}
		sel.Find(selFormulaImage).Each(func(_ int, img *goquery.Selection) {
			src, ok := img.Attr(attrImageSource)
			if !ok {
				return
			}
			for _, node := range img.Nodes {
				htmlutil.ReplaceWithText(node, recognized[src])
			}
		})
		text = textutil.NormalizeText(htmlutil.GetStrippedText(sel.Nodes[0]))
	}

	sel.Find(selImage).Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr(attrImageSource)
		if !ok || seen[src] {
			return
		}
		seen[src] = true
		imageLinks = append(imageLinks, src)
	})

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, err
	}

	return &ProblemPart{Text: text, HTML: html, ImageLinks: imageLinks}, nil
}

// recognizeFormulas fetches every formula image, rasterizes it and
// runs the recognition backend over the bitmaps, keyed by the original
// link. Fetching and rasterization fan out with a bounded worker
// count. Recognition runs serially on the calling goroutine since the
// backend is cpu bound. One failed image fails the whole batch.
func (c *Client) recognizeFormulas(ctx context.Context, scope Scope, links []string) (map[string]string, error) {
	recognized := map[string]string{}
	if len(links) == 0 {
		return recognized, nil
	}

	ctx, span := tracer.Start(ctx, "client:recognizeFormulas")
	defer span.End()

	base, err := c.scopeBase(scope)
	if err != nil {
		return nil, err
	}

	images := make([]image.Image, len(links))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, link := range links {
		g.Go(func() error {
			ref, err := url.Parse(link)
			if err != nil {
				return fmt.Errorf("parse formula image url %q: %w", link, err)
			}
			res, err := c.get(groupCtx, base.ResolveReference(ref).String(), nil)
			if err != nil {
				return err
			}
			img, err := c.rasterizer.Rasterize(res.Body())
			if err != nil {
				return fmt.Errorf("rasterize %q: %w", link, err)
			}
			images[i] = img
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch formula images")
		return nil, err
	}

	for i, link := range links {
		text, err := c.recognizer.Recognize(ctx, images[i])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "recognition failed")
			return nil, err
		}
		recognized[link] = "$" + text + "$"
	}
	return recognized, nil
}

package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// formatHeaders renders headers one per line, sorted by key so dumps
// from different runs stay diffable.
func formatHeaders(headers http.Header) string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(headers))
	for _, k := range keys {
		for _, v := range headers[k] {
			lines = append(lines, fmt.Sprintf("%s: %s", k, v))
		}
	}
	return strings.Join(lines, "\n")
}

func formatRequestBody(req *http.Request) string {
	// bodyless requests (GET and friends) leave GetBody unset
	if req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("failed to get request body: %s", err.Error())
	}
	readBody, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read request body: %s", err.Error())
	}
	return string(readBody)
}

// responseUrl reports where the response actually came from, which for
// a redirect answer is the Location target rather than the requested
// url.
func responseUrl(res *resty.Response) string {
	redirected, err := res.RawResponse.Location()
	if err == nil {
		return redirected.String()
	}
	return res.Request.URL
}

func formatHttpMessage(res *resty.Response) string {
	req := res.Request

	var out strings.Builder
	out.WriteString("---- REQUEST ----\n\n")
	fmt.Fprintf(&out, "%s %s\n\n", req.Method, req.URL)
	out.WriteString(formatHeaders(req.RawRequest.Header))
	out.WriteString("\n\n")
	out.WriteString(formatRequestBody(req.RawRequest))
	out.WriteString("\n\n")
	out.WriteString("---- RESPONSE ----\n\n")
	fmt.Fprintf(&out, "%d %s\n\n", res.StatusCode(), responseUrl(res))
	out.WriteString(formatHeaders(res.Header()))
	out.WriteString("\n\n")
	out.WriteString(res.String())
	return out.String()
}

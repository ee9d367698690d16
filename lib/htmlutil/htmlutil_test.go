package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestGetText(t *testing.T) {
	doc := parseFragment(t, `<div><p>Найдите <b>значение</b> выражения</p></div>`)
	sel := doc.Find("div")
	require.Equal(t, 1, sel.Length())
	require.Equal(t, "Найдите значение выражения", GetText(sel.Nodes[0]))
}

func TestGetStrippedText(t *testing.T) {
	doc := parseFragment(t, "<div>\n  <p>Вычислите: </p>\n  <span> 12 </span>\n</div>")
	sel := doc.Find("div")
	require.Equal(t, 1, sel.Length())
	require.Equal(t, "Вычислите:12", GetStrippedText(sel.Nodes[0]))
}

func TestReplaceWithText(t *testing.T) {
	doc := parseFragment(t, `<div><p>значение <img class="tex" src="/formula/a.svg"/> равно</p></div>`)
	img := doc.Find("img.tex")
	require.Equal(t, 1, img.Length())

	ReplaceWithText(img.Nodes[0], "$x^{2}$")

	div := doc.Find("div")
	require.Equal(t, "значение $x^{2}$ равно", GetText(div.Nodes[0]))

	rendered, err := goquery.OuterHtml(div)
	require.NoError(t, err)
	require.NotContains(t, rendered, "<img")
}

func TestGetAnchors(t *testing.T) {
	doc := parseFragment(t, `<div class="minor">
		<a href="/problem?id=314">  314 </a>
		<a href="/theme?id=5">Все  задания   темы</a>
	</div>`)

	anchors := GetAnchors(context.Background(), doc.Find("div.minor a"))
	require.Equal(t, []Anchor{
		{Name: "314", Href: "/problem?id=314"},
		{Name: "Все задания темы", Href: "/theme?id=5"},
	}, anchors)
}

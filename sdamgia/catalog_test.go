package sdamgia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinaprk/sdamgia-api/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// catalogHTML mirrors the catalog page markup: the first id-less block
// is the "whole database" scaffold, topic blocks are id-less with a
// bold label, category blocks nest under cat_children and carry
// data-id.
const catalogHTML = `<html><body>
<div class="cat_category">
	<b class="cat_name">Вся база заданий</b>
</div>
<div class="cat_category">
	<b class="cat_name">1. Алгебраические выражения</b>
	<div class="cat_children">
		<div class="cat_category" data-id="8">
			<a class="cat_name" href="/test?category_id=8">Преобразования выражений</a>
		</div>
		<div class="cat_category" data-id="9">
			<a class="cat_name" href="/test?category_id=9">Вычисление значений выражений</a>
		</div>
	</div>
</div>
<div class="cat_category">
	<b class="cat_name">рубрика без номера</b>
</div>
<div class="cat_category">
	<b class="cat_name"> Д16. Задачи повышенной сложности</b>
	<div class="cat_children">
		<div class="cat_category" data-id="305">
			<a class="cat_name" href="/test?category_id=305">Задачи с параметром</a>
		</div>
	</div>
</div>
<div class="cat_category">
	<b class="cat_name">Задания Д1. Специальные темы</b>
</div>
</body></html>`

func TestCatalog(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/catalog")
	defer cleanup()

	recorder := &queryRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(r.URL)
		w.Write([]byte(catalogHTML))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	catalog, err := client.Catalog(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(
		[]CatalogEntry{
			{
				TopicID:   "1",
				TopicName: "Алгебраические выражения",
				Categories: []Category{
					{ID: "8", Name: "Преобразования выражений"},
					{ID: "9", Name: "Вычисление значений выражений"},
				},
			},
			{
				TopicID:   "16",
				TopicName: "Задачи повышенной сложности",
				Categories: []Category{
					{ID: "305", Name: "Задачи с параметром"},
				},
			},
			{
				TopicID:    "Д1",
				TopicName:  "Специальные темы",
				Categories: []Category{},
			},
		},
		catalog,
	)
	if diff != "" {
		t.Fatal(diff)
	}

	requests := recorder.recorded()
	require.Len(t, requests, 1)
	require.Equal(t, "/prob_catalog", requests[0].Path)
}

func TestCatalogEmptyPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/catalog")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>нет рубрикатора</p></body></html>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	catalog, err := client.Catalog(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []CatalogEntry{}, catalog)
}

func TestMatchTopic(t *testing.T) {
	catalog := []CatalogEntry{
		{TopicID: "1", TopicName: "Алгебраические выражения"},
		{TopicID: "2", TopicName: "Уравнения и неравенства"},
		{TopicID: "3", TopicName: "Функции и графики"},
	}

	entry, ok := MatchTopic(catalog, "УРАВНЕНИЯ И НЕРАВЕНСТВА")
	require.True(t, ok)
	require.Equal(t, "2", entry.TopicID)

	entry, ok = MatchTopic(catalog, "функции")
	require.True(t, ok)
	require.Equal(t, "3", entry.TopicID)
}

func TestMatchTopicEmptyCatalog(t *testing.T) {
	_, ok := MatchTopic(nil, "алгебра")
	require.False(t, ok)
}

func TestFilterCatalog(t *testing.T) {
	catalog := []CatalogEntry{
		{TopicID: "1", TopicName: "Алгебраические выражения"},
		{TopicID: "2", TopicName: "Уравнения и неравенства"},
		{TopicID: "3", TopicName: "Функции и графики"},
	}

	filtered := FilterCatalog(catalog, []string{"УРАВНЕНИЯ"})
	require.Len(t, filtered, 1)
	require.Equal(t, "2", filtered[0].TopicID)

	filtered = FilterCatalog(catalog, []string{"выражения", "графики"})
	require.Len(t, filtered, 2)
	require.Equal(t, "1", filtered[0].TopicID)
	require.Equal(t, "3", filtered[1].TopicID)

	require.Empty(t, FilterCatalog(catalog, nil))
	require.Empty(t, FilterCatalog(catalog, []string{"стереометрия"}))
}

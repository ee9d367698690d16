package sdamgia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/dinaprk/sdamgia-api/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// queryRecorder keeps the request urls a test server saw, in order.
type queryRecorder struct {
	mu   sync.Mutex
	urls []*url.URL
}

func (r *queryRecorder) record(u *url.URL) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, u)
}

func (r *queryRecorder) recorded() []*url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*url.URL{}, r.urls...)
}

func TestSearchPagination(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/listing")
	defer cleanup()

	pages := map[string]string{
		"1": `<html><body>
			<span class="prob_nums">Задание 1 № 1001</span>
			<span class="prob_nums">Задание 2 № 1002</span>
		</body></html>`,
		"2": `<html><body>
			<span class="prob_nums">Задание 3 № 1002</span>
			<span class="prob_nums">Задание 4 № 1003</span>
		</body></html>`,
	}

	recorder := &queryRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(r.URL)
		w.Write([]byte(pages[r.URL.Query().Get("page")]))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	ids, err := client.Search(context.Background(), "пирамида")
	if err != nil {
		t.Fatal(err)
	}

	// page order is preserved and the duplicate id stays
	require.Equal(t, []int{1001, 1002, 1002, 1003}, ids)

	requests := recorder.recorded()
	require.Len(t, requests, 3)
	for i, u := range requests {
		require.Equal(t, "/search", u.Path)
		require.Equal(t, "пирамида", u.Query().Get("search"))
		require.Equal(t, fmt.Sprint(i+1), u.Query().Get("page"))
	}
}

func TestSearchEmptyFirstPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/listing")
	defer cleanup()

	recorder := &queryRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(r.URL)
		w.Write([]byte(`<html><body><p>ничего не найдено</p></body></html>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	ids, err := client.Search(context.Background(), "абракадабра")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []int{}, ids)
	require.Len(t, recorder.recorded(), 1)
}

func TestSearchBadLabel(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/listing")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><span class="prob_nums">Задание № без номера</span></body></html>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	_, err := client.Search(context.Background(), "пирамида")
	require.ErrorContains(t, err, "parse problem listing label")
}

func TestTestProblems(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/listing")
	defer cleanup()

	recorder := &queryRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(r.URL)
		w.Write([]byte(`<html><body>
			<span class="prob_nums">Задание 1 № 77</span>
			<span class="prob_nums">Задание 2 № 314</span>
		</body></html>`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	ids, err := client.TestProblems(context.Background(), 555)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []int{77, 314}, ids)

	requests := recorder.recorded()
	require.Len(t, requests, 1)
	require.Equal(t, "/test", requests[0].Path)
	require.Equal(t, "555", requests[0].Query().Get("id"))
}

func TestThemeProblems(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:sdamgia/listing")
	defer cleanup()

	labels := map[string][]string{
		"1": {"Задания Д1", "Задания Д2"},
		"2": {"Задания Д3"},
	}

	recorder := &queryRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(r.URL)

		body := "<html><body>"
		for _, label := range labels[r.URL.Query().Get("page")] {
			body += fmt.Sprintf(
				`<span class="prob_nums"><a href="/problem?id=1">%s</a> № 1</span>`,
				label,
			)
		}
		body += "</body></html>"
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, ClientOptions{})

	got, err := client.ThemeProblems(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"Задания Д1", "Задания Д2", "Задания Д3"}, got)

	requests := recorder.recorded()
	require.Len(t, requests, 3)
	require.Equal(t, "/test", requests[0].Path)
	require.Equal(t, "5", requests[0].Query().Get("theme"))
}

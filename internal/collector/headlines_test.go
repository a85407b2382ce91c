package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsPage = `
<html><body>
  <div class="headlineStack__list">
    <a href="/nba/story/_/id/1" data-clamp="2">Lakers rally past rivals in overtime thriller</a>
    <a href="/nba/story/_/id/2" data-clamp="2">Celtics star listed as questionable with ankle sprain</a>
    <a href="/nba/story/_/id/3" data-clamp="2">Draft board shakeup after combine</a>
  </div>
</body></html>`

const articlePage = `
<html><body>
  <div class="article-body">
    <p>The Lakers erased a fifteen point deficit in the fourth quarter behind a barrage of three pointers.</p>
    <p>The comeback capped an emotional night that also saw a season high in assists.</p>
  </div>
</body></html>`

func newsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/nba/" {
			_, _ = w.Write([]byte(newsPage))
			return
		}
		_, _ = w.Write([]byte(articlePage))
	}))
}

func TestFetchHeadlines(t *testing.T) {
	server := newsServer(t)
	defer server.Close()

	c := New(server.Client(), 2)
	c.newsURL = server.URL + "/nba/"

	headlines, err := c.FetchHeadlines(context.Background())
	require.NoError(t, err)
	require.Len(t, headlines, 2, "limit must cap the scrape")

	first := headlines[0]
	assert.Equal(t, "Lakers rally past rivals in overtime thriller", first.Title)
	assert.Equal(t, server.URL+"/nba/story/_/id/1", first.URL)
	assert.Equal(t, "Los Angeles Lakers", first.Team)
	assert.Contains(t, first.ArticleBody, "fifteen point deficit")

	assert.Equal(t, "Boston Celtics", headlines[1].Team)
}

func TestFetchHeadlinesAbsorbsServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.Client(), 5)
	c.newsURL = server.URL + "/nba/"

	headlines, err := c.FetchHeadlines(context.Background())
	assert.Error(t, err)
	assert.Empty(t, headlines)
}

func TestFetchHeadlinesEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
	}))
	defer server.Close()

	c := New(server.Client(), 5)
	c.newsURL = server.URL + "/nba/"

	headlines, err := c.FetchHeadlines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, headlines)
}

func TestExtractTeam(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Lakers close out the homestand", "Los Angeles Lakers"},
		// First keyword in catalog order wins when two teams appear.
		{"Lakers beat Warriors in overtime", "Golden State Warriors"},
		{"Sixers shake up rotation", "Philadelphia 76ers"},
		{"Trail Blazers eye lottery", "Portland Trail Blazers"},
		{"League revenue hits record", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractTeam(tt.text), "text: %q", tt.text)
	}
}

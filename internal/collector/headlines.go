package collector

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"courtside/internal/models"
)

const (
	espnNewsURL = "https://www.espn.com/nba/"
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// Article bodies are capped to stay inside model token limits.
	maxArticleLen = 2000
	minArticleLen = 100
)

// Selector fallbacks, tried in order; the page structure shifts often.
var headlineSelectors = []string{
	`a[data-clamp="2"]`,
	".headlineStack__list a",
	`a[data-module="Article"]`,
	"h2 a",
	"h3 a",
	".contentItem__title a",
}

var articleSelectors = []string{
	".article-body",
	`[data-module="ArticleBody"]`,
	".StoryBody",
	"article p",
	".article-content p",
	".article p",
}

var descClassExpr = regexp.MustCompile(`(?i)description|summary|excerpt`)

// Collector fetches headlines with article bodies and the day's scoreboard.
// All network and parse faults are absorbed and reported to the caller as an
// error alongside an empty slice; the pipeline never aborts on them.
type Collector struct {
	client        *http.Client
	newsURL       string
	scoreboardURL string
	limit         int
}

// New builds a collector; limit caps how many headlines are scraped.
func New(client *http.Client, limit int) *Collector {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Collector{
		client:        client,
		newsURL:       espnNewsURL,
		scoreboardURL: nbaScoreboardURL,
		limit:         limit,
	}
}

// FetchHeadlines scrapes the top NBA headlines and their article bodies.
// Returns an empty slice (plus the cause) on any scrape fault.
func (c *Collector) FetchHeadlines(ctx context.Context) ([]models.Headline, error) {
	slog.Info("[Collector] scraping headlines", slog.String("url", c.newsURL))

	doc, err := c.fetchDocument(ctx, c.newsURL)
	if err != nil {
		slog.Error("[Collector] failed to fetch news page", slog.String("error", err.Error()))
		return nil, err
	}

	anchors := findHeadlineAnchors(doc)
	if len(anchors) == 0 {
		slog.Warn("[Collector] no headlines found, page structure may have changed")
		return nil, nil
	}

	today := time.Now().Format("2006-01-02")
	var headlines []models.Headline
	for _, sel := range anchors {
		if len(headlines) >= c.limit {
			break
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			continue
		}

		link := c.absoluteLink(sel.AttrOr("href", ""))
		description := findDescription(sel)
		if description == "" {
			description = "No description available"
		}

		headlines = append(headlines, models.Headline{
			Title:       title,
			Description: description,
			URL:         link,
			Date:        today,
			Team:        extractTeam(title + " " + description),
			ArticleBody: c.fetchArticle(ctx, link),
		})
	}

	slog.Info("[Collector] scraped headlines", slog.Int("count", len(headlines)))
	return headlines, nil
}

func (c *Collector) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

func findHeadlineAnchors(doc *goquery.Document) []*goquery.Selection {
	for _, selector := range headlineSelectors {
		found := doc.Find(selector)
		if found.Length() > 0 {
			return toSlice(found)
		}
	}

	// Fallback: any NBA article link with text.
	var anchors []*goquery.Selection
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if strings.Contains(href, "/nba/") && strings.TrimSpace(s.Text()) != "" {
			anchors = append(anchors, s)
		}
	})
	return anchors
}

func toSlice(found *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// findDescription looks for a short blurb near the headline anchor.
func findDescription(sel *goquery.Selection) string {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return ""
	}

	desc := ""
	parent.Find("p, span, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if descClassExpr.MatchString(s.AttrOr("class", "")) {
			desc = strings.TrimSpace(s.Text())
			return false
		}
		return true
	})
	if desc != "" {
		return desc
	}

	return strings.TrimSpace(sel.NextFiltered("p, span, div").Text())
}

func (c *Collector) absoluteLink(href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(c.newsURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// fetchArticle scrapes the article body text, trying selector fallbacks
// until substantial content appears. Failures return "".
func (c *Collector) fetchArticle(ctx context.Context, articleURL string) string {
	if articleURL == "" {
		return ""
	}

	doc, err := c.fetchDocument(ctx, articleURL)
	if err != nil {
		slog.Warn("[Collector] failed to scrape article",
			slog.String("url", articleURL),
			slog.String("error", err.Error()))
		return ""
	}

	var text string
	for _, selector := range articleSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				paragraphs = append(paragraphs, t)
			}
		})
		text = strings.Join(paragraphs, " ")
		if len(text) > minArticleLen {
			break
		}
	}

	if len(text) < minArticleLen {
		var paragraphs []string
		doc.Find("main p, article p").Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				paragraphs = append(paragraphs, t)
			}
		})
		text = strings.Join(paragraphs, " ")
	}

	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxArticleLen {
		text = text[:maxArticleLen] + "..."
	}
	return text
}

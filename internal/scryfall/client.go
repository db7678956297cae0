package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.scryfall.com"
	userAgent      = "proxyprint/1.0 (personal use)"
	// defaultDelay keeps request pacing inside Scryfall's comfort zone.
	defaultDelay = 120 * time.Millisecond
)

// Client fetches card listings from the Scryfall search API.
type Client struct {
	// BaseURL of the API, overridable for tests.
	BaseURL string
	// Delay between successive paginated requests.
	Delay time.Duration

	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Scryfall client.
func NewClient(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL:    defaultBaseURL,
		Delay:      defaultDelay,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// SearchOptions controls which prints a set search returns.
type SearchOptions struct {
	// IncludeTokens also queries each set's token set (t<code>).
	IncludeTokens bool
	// IncludeVariations includes alternate prints of the same card.
	IncludeVariations bool
}

// BuildQuery assembles the Scryfall search query for the given set
// codes, e.g. ["m21", "spm"] -> "e:m21 OR e:tm21 OR e:spm OR e:tspm".
func BuildQuery(sets []string, includeTokens bool) string {
	parts := make([]string, 0, len(sets)*2)
	for _, code := range sets {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		parts = append(parts, "e:"+code)
		if includeTokens {
			parts = append(parts, "e:t"+code)
		}
	}
	return strings.Join(parts, " OR ")
}

// SearchSets returns all prints for the given set codes, following the
// API's pagination and sorting the result by set then collector number.
func (c *Client) SearchSets(ctx context.Context, sets []string, opts SearchOptions) ([]Card, error) {
	query := BuildQuery(sets, opts.IncludeTokens)
	if query == "" {
		return nil, fmt.Errorf("no set codes given")
	}

	params := url.Values{}
	params.Set("order", "set")
	params.Set("q", query)
	params.Set("unique", "prints")
	params.Set("include_extras", "true")
	params.Set("include_variations", fmt.Sprintf("%t", opts.IncludeVariations))

	pageURL := c.BaseURL + "/cards/search?" + params.Encode()

	var cards []Card
	for pageURL != "" {
		page, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		cards = append(cards, page.Data...)

		pageURL = ""
		if page.HasMore {
			pageURL = page.NextPage
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Delay):
			}
		}
	}

	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Set != cards[j].Set {
			return cards[i].Set < cards[j].Set
		}
		return cards[i].CollectorNumber < cards[j].CollectorNumber
	})

	c.logger.Info("fetched card listing",
		zap.Strings("sets", sets),
		zap.Int("cards", len(cards)))
	return cards, nil
}

// fetchPage GETs one search page and decodes it.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*searchPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: HTTP %s", resp.Status)
	}

	var page searchPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &page, nil
}

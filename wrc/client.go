package wrc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultSeasonURL is the active-season calendar endpoint.
	DefaultSeasonURL = "https://api.wrc.com/contel-page/83388/calendar/active-season/"
	// DefaultResultsURL is the base path of the per-event results API.
	DefaultResultsURL = "https://api.wrc.com/results-api"

	defaultUserAgent = "wrc-results-go/1.0 (+https://github.com/rallysight/wrc-results-go)"
)

// Client fetches WRC results data. It holds two immutable base URLs and an
// HTTP client; it keeps no other state between calls.
type Client struct {
	seasonURL  string
	resultsURL string
	userAgent  string
	http       *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the season calendar URL and the results API base
// URL. Empty strings keep the defaults.
func WithBaseURLs(seasonURL, resultsURL string) Option {
	return func(c *Client) {
		if seasonURL != "" {
			c.seasonURL = seasonURL
		}
		if resultsURL != "" {
			c.resultsURL = strings.TrimSuffix(resultsURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a client for the public WRC API. The default HTTP
// client has no timeout; cancel via context or pass WithHTTPClient.
func NewClient(opts ...Option) *Client {
	c := &Client{
		seasonURL:  DefaultSeasonURL,
		resultsURL: DefaultResultsURL,
		userAgent:  defaultUserAgent,
		http:       &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActiveSeason fetches the full active-season calendar payload.
func (c *Client) ActiveSeason(ctx context.Context) (*Season, error) {
	var season Season
	if err := c.getJSON(ctx, c.seasonURL, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// ActiveSeasonEvents fetches the calendar and returns just the rally events,
// in calendar order.
func (c *Client) ActiveSeasonEvents(ctx context.Context) ([]Event, error) {
	season, err := c.ActiveSeason(ctx)
	if err != nil {
		return nil, err
	}
	return season.RallyEvents.Items, nil
}

// Itinerary fetches the nested leg/section/stage/control structure of an
// event and returns its legs.
func (c *Client) Itinerary(ctx context.Context, eventID int64) ([]ItineraryLeg, error) {
	var resp struct {
		ItineraryLegs []ItineraryLeg `json:"itineraryLegs"`
	}
	if err := c.getJSON(ctx, c.eventURL(eventID, "itinerary"), &resp); err != nil {
		return nil, err
	}
	return resp.ItineraryLegs, nil
}

// StartList fetches a start list and returns its items sorted by start
// order ascending.
func (c *Client) StartList(ctx context.Context, eventID, startListID int64) ([]StartListItem, error) {
	var resp struct {
		StartListItems []StartListItem `json:"startListItems"`
	}
	url := c.eventURL(eventID, fmt.Sprintf("start-list-external/%d", startListID))
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	items := resp.StartListItems
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

// Entries fetches the cars registered for an event.
func (c *Client) Entries(ctx context.Context, eventID int64) ([]Entry, error) {
	var entries []Entry
	if err := c.getJSON(ctx, c.eventURL(eventID, "cars"), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) eventURL(eventID int64, resource string) string {
	return fmt.Sprintf("%s/rally-event/%d/%s", c.resultsURL, eventID, resource)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("GET", zap.String("url", url))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

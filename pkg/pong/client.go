package pong

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pongtrack/startuppong/pkg/api"
	"github.com/pongtrack/startuppong/pkg/errors"
)

// DefaultBaseURL is the production startuppong.com endpoint.
const DefaultBaseURL = "http://www.startuppong.com"

// Client provides access to the startuppong.com ladder API.
// All methods are safe for concurrent use by multiple goroutines: each call
// is independent and the client holds no mutable state between calls.
type Client struct {
	api     *api.Client
	baseURL string
	account Account
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL. Used by tests to point the
// client at a fake server, and for staging deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient substitutes the underlying HTTP client, e.g. to bound
// timeouts differently or to use an httptest server's client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.api = api.NewClient(h, nil) }
}

// NewClient creates a ladder API client for the given account.
func NewClient(account Account, opts ...Option) *Client {
	c := &Client{
		account: account,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.api == nil {
		c.api = api.NewClient(nil, nil)
	}
	return c
}

// GetPlayers returns all players on the account's ladder.
//
// Wraps GET /api/v1/get_players.
func (c *Client) GetPlayers(ctx context.Context) (*GetPlayersResponse, error) {
	var resp GetPlayersResponse
	if err := c.api.GetJSON(ctx, c.endpoint("get_players"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRecentMatches returns the most recent matches on the account.
//
// Wraps GET /api/v1/get_recent_matches_for_company.
func (c *Client) GetRecentMatches(ctx context.Context) (*GetMatchesResponse, error) {
	var resp GetMatchesResponse
	if err := c.api.GetJSON(ctx, c.endpoint("get_recent_matches_for_company"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddMatch records a completed match between the given player ids.
//
// Wraps POST /api/v1/add_match with a form-urlencoded body. The response
// body is not inspected, but a non-2xx status is reported as an error so
// remote-side rejections (e.g. unknown ids) surface to the caller.
func (c *Client) AddMatch(ctx context.Context, winnerID, loserID int) error {
	form := c.credentials()
	form.Set("winner_id", strconv.Itoa(winnerID))
	form.Set("loser_id", strconv.Itoa(loserID))
	return c.api.PostForm(ctx, fmt.Sprintf("%s/api/v1/add_match", c.baseURL), form)
}

// PlayerIDs resolves display-name fragments to numeric player ids.
//
// The service has no search endpoint, so the full player list is fetched
// exactly once and each fragment is matched against it in input order. A
// fragment matches the first player (in list order) whose name contains it
// as a case-sensitive substring; if a fragment matches several players, the
// first wins silently. The first fragment with no match aborts the call
// with a PLAYER_NOT_FOUND error carrying that fragment, and no partial
// result is returned.
func (c *Client) PlayerIDs(ctx context.Context, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no name fragments given")
	}

	resp, err := c.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(names))
	for _, name := range names {
		found := false
		for _, p := range resp.Players {
			if strings.Contains(p.Name, name) {
				ids = append(ids, p.ID)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.New(errors.ErrCodePlayerNotFound, "no player matching %q", name)
		}
	}
	return ids, nil
}

// AddMatchWithNames resolves the winner and loser name fragments via
// [Client.PlayerIDs] and records the match with the resulting ids, winner
// first. Failures from resolution or submission propagate unchanged.
func (c *Client) AddMatchWithNames(ctx context.Context, winner, loser string) error {
	ids, err := c.PlayerIDs(ctx, []string{winner, loser})
	if err != nil {
		return err
	}
	return c.AddMatch(ctx, ids[0], ids[1])
}

func (c *Client) endpoint(name string) string {
	return fmt.Sprintf("%s/api/v1/%s?%s", c.baseURL, name, c.credentials().Encode())
}

func (c *Client) credentials() url.Values {
	return url.Values{
		"api_account_id": {c.account.ID()},
		"api_access_key": {c.account.Key()},
	}
}

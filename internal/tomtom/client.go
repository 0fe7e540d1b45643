package tomtom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"voltflow-backend/internal/models"
	"voltflow-backend/pkg/geo"
)

// Distinct failure kinds for one directory fetch. Callers branch on these
// with errors.Is; the wrapped error carries the detail.
var (
	ErrTransport = errors.New("tomtom: transport failure")
	ErrBadStatus = errors.New("tomtom: unexpected status")
	ErrDecode    = errors.New("tomtom: malformed response")
)

const (
	defaultBaseURL     = "https://api.tomtom.com/search/2/categorySearch/electric%20vehicle%20station.json"
	defaultRadiusM     = 10000
	defaultLimit       = 50
	evChargingCategory = "7309"
)

// Client issues category searches against the TomTom places API. One
// outbound GET per call; no retry, no caching.
type Client struct {
	apiKey     string
	baseURL    string
	radiusM    int
	limit      int
	httpClient *http.Client
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the search endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRadius sets the search radius in meters.
func WithRadius(m int) Option {
	return func(c *Client) { c.radiusM = m }
}

// WithLimit caps the number of returned results.
func WithLimit(n int) Option {
	return func(c *Client) { c.limit = n }
}

// NewClient creates a places-search client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		radiusM: defaultRadiusM,
		limit:   defaultLimit,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the subset of the TomTom payload the app reads.
// Unknown fields are ignored by the decoder.
type searchResponse struct {
	Summary struct {
		NumResults int `json:"numResults"`
	} `json:"summary"`
	Results []searchResult `json:"results"`
}

// Pointer fields mark the parts of a result the app cannot do without; a
// result arriving without them is a malformed response, not a default.
type searchResult struct {
	ID    string   `json:"id"`
	Score float64  `json:"score"`
	Dist  *float64 `json:"dist"`
	POI   *struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"poi"`
	Address *struct {
		FreeformAddress string `json:"freeformAddress"`
	} `json:"address"`
	Position *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"position"`
}

// NearbyStations fetches charging stations around the given coordinate,
// preserving the server's score ordering. Fields the places API does not
// supply (connector type, power, price, availability) are filled with
// stable defaults rather than left absent.
func (c *Client) NearbyStations(ctx context.Context, origin geo.Coordinate) ([]models.ChargingStation, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: api key not configured", ErrTransport)
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("lat", fmt.Sprintf("%.6f", origin.Lat))
	q.Set("lon", fmt.Sprintf("%.6f", origin.Lon))
	q.Set("radius", fmt.Sprintf("%d", c.radiusM))
	q.Set("limit", fmt.Sprintf("%d", c.limit))
	q.Set("categorySet", evChargingCategory)
	q.Set("view", "Unified")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	stations := make([]models.ChargingStation, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: result missing id", ErrDecode)
		}
		if r.Position == nil {
			return nil, fmt.Errorf("%w: result %s missing position", ErrDecode, r.ID)
		}
		if r.POI == nil || r.POI.Name == "" {
			return nil, fmt.Errorf("%w: result %s missing poi name", ErrDecode, r.ID)
		}
		if r.Address == nil {
			return nil, fmt.Errorf("%w: result %s missing address", ErrDecode, r.ID)
		}
		coord := geo.Coordinate{Lat: r.Position.Lat, Lon: r.Position.Lon}
		dist := geo.Distance(origin, coord)
		if r.Dist != nil {
			dist = *r.Dist
		}
		stations = append(stations, models.ChargingStation{
			ID:         r.ID,
			Name:       r.POI.Name,
			Coordinate: coord,
			// The places API does not report connector details, power,
			// price or availability; defaults stand in for them.
			Type:        models.ConnectorType2,
			PowerOutput: 0,
			Price:       0,
			Distance:    dist,
			Address:     r.Address.FreeformAddress,
			Available:   0,
			Total:       0,
		})
	}

	return stations, nil
}

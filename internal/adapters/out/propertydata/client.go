// Package propertydata implements the property-size lookup against an
// external real-estate data API. Lookups are read-through cached and always
// degrade to a configured fallback size, never to an error, so a provider
// outage cannot block order creation.
package propertydata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/ports"
)

const (
	connectTimeout = 10 * time.Second
	requestTimeout = 30 * time.Second
)

// Config holds the connection settings for the property-data API.
type Config struct {
	BaseURL  string
	APIKey   string
	APIHost  string
	CacheTTL time.Duration

	// Fallback is returned whenever the lookup fails for any reason.
	Fallback ports.PropertySize
}

// Client implements ports.PropertySizeProvider over HTTP.
type Client struct {
	httpClient *http.Client
	cache      ports.CacheStore
	config     Config
	logger     *slog.Logger
}

// NewClient creates a property-data client with the package's timeout policy.
func NewClient(cache ports.CacheStore, config Config, logger *slog.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = connectTimeout

	return &Client{
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		cache:  cache,
		config: config,
		logger: logger.With("component", "property_data_client"),
	}
}

// propertyResponse mirrors the subset of the provider payload we consume.
type propertyResponse struct {
	LivingArea int `json:"livingArea"`
	ResoFacts  struct {
		LotSize string `json:"lotSize"`
	} `json:"resoFacts"`
}

// Lookup resolves the measured size of the property at the given address.
// Results are cached by normalized address. Any failure, from transport to
// payload shape, substitutes the configured fallback size.
func (c *Client) Lookup(ctx context.Context, address *customer.Address) ports.PropertySize {
	key := ports.PropertyCacheKey(address.Street(), address.City(), address.State(), address.Zip())

	if cached, found, err := c.cache.Get(ctx, key); err != nil {
		c.logger.WarnContext(ctx, "property cache read failed", "error", err)
	} else if found {
		var size ports.PropertySize
		if err := json.Unmarshal(cached, &size); err == nil {
			return size
		}
		c.logger.WarnContext(ctx, "discarding malformed property cache entry", "key", key)
	}

	size, err := c.fetch(ctx, address)
	if err != nil {
		c.logger.ErrorContext(ctx, "property lookup failed, using fallback size",
			"street", address.Street(), "city", address.City(), "error", err)
		return c.config.Fallback
	}

	if payload, err := json.Marshal(size); err == nil {
		if err := c.cache.Set(ctx, key, payload, c.config.CacheTTL); err != nil {
			c.logger.WarnContext(ctx, "property cache write failed", "error", err)
		}
	}

	return size
}

func (c *Client) fetch(ctx context.Context, address *customer.Address) (ports.PropertySize, error) {
	query := url.Values{}
	query.Set("address", fmt.Sprintf("%s, %s, %s %s",
		address.Street(), address.City(), address.State(), address.Zip()))
	endpoint := c.config.BaseURL + "/property?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.PropertySize{}, err
	}
	req.Header.Set("x-rapidapi-key", c.config.APIKey)
	req.Header.Set("x-rapidapi-host", c.config.APIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.PropertySize{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.PropertySize{}, fmt.Errorf("property api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.PropertySize{}, err
	}

	var parsed propertyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ports.PropertySize{}, fmt.Errorf("decode property payload: %w", err)
	}

	return ports.PropertySize{
		LivingAreaSqFt: parsed.LivingArea,
		LotSize:        parsed.ResoFacts.LotSize,
	}, nil
}

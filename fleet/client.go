// Package fleet consumes the upstream fleet inventory API that serves
// the vehicle and detailing-service catalogs.
package fleet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gislain231/greenshare/models"
)

const (
	cacheVehiclesKey = "catalog:vehicles"
	cacheServicesKey = "catalog:services"
	cacheTTL         = 60 * time.Second
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cache   *goredis.Client // optional; nil disables caching
}

// NewClient builds a fleet client from FLEET_API_URL. The cache client
// may be nil.
func NewClient(cache *goredis.Client) *Client {
	base := os.Getenv("FLEET_API_URL")
	if base == "" {
		base = "http://127.0.0.1:5000"
	}
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Cache:   cache,
	}
}

// Vehicles returns the vehicle catalog. Any upstream failure degrades
// to the fixed sample list; failures are logged, never returned.
func (c *Client) Vehicles(ctx context.Context) []models.Vehicle {
	var vehicles []models.Vehicle
	if c.cached(ctx, cacheVehiclesKey, &vehicles) {
		return vehicles
	}

	if err := c.getJSON(ctx, "/vehicles", &vehicles); err != nil {
		log.Printf("Error loading vehicles: %v", err)
		return models.SampleVehicles()
	}

	c.store(ctx, cacheVehiclesKey, vehicles)
	return vehicles
}

// Services returns the detailing-service catalog. Upstream failures
// silently degrade to an empty list.
func (c *Client) Services(ctx context.Context) []models.DetailingService {
	var services []models.DetailingService
	if c.cached(ctx, cacheServicesKey, &services) {
		return services
	}

	if err := c.getJSON(ctx, "/detailing/services", &services); err != nil {
		log.Printf("Error loading services: %v", err)
		return []models.DetailingService{}
	}

	c.store(ctx, cacheServicesKey, services)
	return services
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fleet API returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) cached(ctx context.Context, key string, out interface{}) bool {
	if c.Cache == nil {
		return false
	}
	data, err := c.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *Client) store(ctx context.Context, key string, value interface{}) {
	if c.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Printf("Error caching %s: %v", key, err)
	}
}

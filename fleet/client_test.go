package fleet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gislain231/greenshare/models"
)

func upstream(t *testing.T, vehicles []models.Vehicle, services []models.DetailingService) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/vehicles", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(vehicles)
	})
	mux.HandleFunc("/detailing/services", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(services)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestVehiclesFromUpstream(t *testing.T) {
	want := []models.Vehicle{
		{ID: 7, Make: "Tesla", Model: "Model 3", Year: 2023, DailyRate: 90, VehicleType: "sedan", SeatingCapacity: 5, IsAvailable: true},
	}
	srv := upstream(t, want, nil)

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	got := c.Vehicles(context.Background())
	assert.Equal(t, want, got)
}

func TestVehiclesFallbackOnNetworkError(t *testing.T) {
	srv := upstream(t, nil, nil)
	srv.Close() // connection refused from here on

	c := &Client{BaseURL: srv.URL, HTTP: http.DefaultClient}
	got := c.Vehicles(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, "Camry", got[0].Model)
	assert.Equal(t, 50.00, got[0].DailyRate)
	assert.Equal(t, "Civic", got[1].Model)
	assert.Equal(t, 45.00, got[1].DailyRate)
	assert.Equal(t, "Escape", got[2].Model)
	assert.Equal(t, 60.00, got[2].DailyRate)
}

func TestVehiclesFallbackOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	got := c.Vehicles(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, models.SampleVehicles(), got)
}

func TestServicesDegradeToEmpty(t *testing.T) {
	srv := upstream(t, nil, nil)
	srv.Close()

	c := &Client{BaseURL: srv.URL, HTTP: http.DefaultClient}
	got := c.Services(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestServicesFromUpstream(t *testing.T) {
	want := []models.DetailingService{
		{ID: 1, Name: "Eco Wash", BasePrice: 35, Duration: 45, IsActive: true},
	}
	srv := upstream(t, nil, want)

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client()}
	assert.Equal(t, want, c.Services(context.Background()))
}

func TestVehiclesCachedAcrossUpstreamOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	want := []models.Vehicle{
		{ID: 2, Make: "Honda", Model: "Civic", Year: 2019, DailyRate: 45, VehicleType: "sedan", SeatingCapacity: 5, IsAvailable: true},
	}
	srv := upstream(t, want, nil)

	c := &Client{BaseURL: srv.URL, HTTP: srv.Client(), Cache: cache}
	require.Equal(t, want, c.Vehicles(context.Background()))

	// Upstream goes away: the cached catalog keeps serving, not the
	// fallback samples.
	srv.Close()
	assert.Equal(t, want, c.Vehicles(context.Background()))

	// Once the cache entry expires the fallback takes over.
	mr.FastForward(cacheTTL * 2)
	assert.Equal(t, models.SampleVehicles(), c.Vehicles(context.Background()))
}

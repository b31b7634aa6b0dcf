package countries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/atlas/models"
)

func newTestGateway(countriesURL, ratesURL string, timeout time.Duration) Gateway {
	return NewGateway(&Config{
		CountriesAPIURL: countriesURL,
		RatesAPIURL:     ratesURL,
		FetchTimeout:    timeout,
	})
}

func TestGateway_FetchCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Nigeria","capital":"Abuja","region":"Africa","population":200000000,"flag":"https://flagcdn.com/ng.svg","currencies":[{"code":"NGN","symbol":"₦"}]},
			{"name":"Vatican","population":800,"currencies":[]}
		]`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	raw, err := g.FetchCountries(context.Background())

	assert.NoError(t, err)
	assert.Len(t, raw, 2)
	assert.Equal(t, "Nigeria", raw[0].Name)
	assert.Equal(t, "NGN", raw[0].Currencies[0].Code)
	assert.EqualValues(t, 200000000, *raw[0].Population)
	assert.Empty(t, raw[1].Currencies)
}

func TestGateway_FetchCountries_AbsentPopulationStaysNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Nowhere"}]`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	raw, err := g.FetchCountries(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, raw[0].Population)
}

func TestGateway_FetchCountries_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	_, err := g.FetchCountries(context.Background())

	assert.ErrorIs(t, err, models.ErrCountrySourceUnavailable)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestGateway_FetchCountries_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	_, err := g.FetchCountries(context.Background())

	assert.ErrorIs(t, err, models.ErrCountrySourceUnavailable)
}

func TestGateway_FetchCountries_Unreachable(t *testing.T) {
	g := newTestGateway("http://127.0.0.1:1", "http://127.0.0.1:1", time.Second)
	_, err := g.FetchCountries(context.Background())

	assert.ErrorIs(t, err, models.ErrCountrySourceUnavailable)
}

func TestGateway_FetchCountries_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, 20*time.Millisecond)
	_, err := g.FetchCountries(context.Background())

	assert.ErrorIs(t, err, models.ErrCountrySourceUnavailable)
}

func TestGateway_FetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{"USD":1,"NGN":1600.5,"EUR":0.92}}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	rates, err := g.FetchRates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rates, 3)
	assert.Equal(t, 1600.5, rates["NGN"])
}

func TestGateway_FetchRates_MissingTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	rates, err := g.FetchRates(context.Background())

	// an absent table is derivation's problem, not a fetch failure
	assert.NoError(t, err)
	assert.Empty(t, rates)
}

func TestGateway_FetchRates_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, srv.URL, time.Second)
	_, err := g.FetchRates(context.Background())

	assert.ErrorIs(t, err, models.ErrRateSourceUnavailable)
}

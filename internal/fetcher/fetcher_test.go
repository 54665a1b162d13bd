package fetcher

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"helperkit/internal/errors"
	"helperkit/internal/promises"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const usersJSON = `[{"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz",
"address":{"street":"Kulas Light","suite":"Apt. 556","city":"Gwenborough","zipcode":"92998-3874","geo":{"lat":"-37.3159","lng":"81.1496"}},
"phone":"1-770-736-8031 x56442","website":"hildegard.org",
"company":{"name":"Romaguera-Crona","catchPhrase":"Multi-layered client-server neural-net","bs":"harness real-time e-markets"}}]`

func TestNewDefaults(t *testing.T) {
	f := New()
	assert.Equal(t, DefaultEndpoint, f.Endpoint())
	assert.Equal(t, DefaultRegionURL, f.regionURL)
	assert.Equal(t, DefaultCountryURL, f.countryURL)
	assert.Zero(t, f.client.Timeout)

	timed := New(WithTimeout(3*time.Second), WithEndpoint(""))
	assert.Equal(t, 3*time.Second, timed.client.Timeout)
	assert.Equal(t, DefaultEndpoint, timed.Endpoint())
}

func TestWithTimeoutIndependentOfOptionOrder(t *testing.T) {
	custom := &http.Client{}

	before := New(WithTimeout(2*time.Second), WithClient(custom))
	after := New(WithClient(custom), WithTimeout(2*time.Second))

	assert.Equal(t, 2*time.Second, before.client.Timeout)
	assert.Equal(t, 2*time.Second, after.client.Timeout)
	assert.Zero(t, custom.Timeout, "caller's client must not be modified")
}

func TestFetchSuccess(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"users":[]}}`))
	}))
	defer srv.Close()

	f := New(WithEndpoint(srv.URL + "/users"))
	resp, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"users":[]}}`, string(resp.Body))
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, err := New(WithEndpoint(url)).Fetch(context.Background())
	assert.Nil(t, resp)
	require.Error(t, err)

	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "An Error Occurred", fetchErr.Message)
	assert.NotNil(t, fetchErr.Cause)
}

func TestFetchStatusFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(WithEndpoint(srv.URL)).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsFetchError(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Response.StatusCode)
	assert.Contains(t, string(statusErr.Response.Body), "Boom")
	assert.Equal(t, "An Error Occurred: request failed with status code 500", err.Error())
}

func TestFetchCustomClientFailure(t *testing.T) {
	boom := stderrors.New("Boom")
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}

	_, err := New(WithClient(client)).Fetch(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "fetch", errors.GetErrorCategory(err))
}

func TestFetchHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New(WithEndpoint(srv.URL)).Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, errors.IsCancellationError(err))
}

func TestDecodeUsers(t *testing.T) {
	users, err := DecodeUsers(&Response{Body: []byte(usersJSON)})
	require.NoError(t, err)
	require.Len(t, users, 1)

	u := users[0]
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "Bret", u.Username)
	assert.Equal(t, "Gwenborough", u.Address.City)
	assert.Equal(t, "-37.3159", u.Address.Geo.Lat)
	assert.Equal(t, "Romaguera-Crona", u.Company.Name)

	_, err = DecodeUsers(&Response{Body: []byte(`{"not":"a list"}`)})
	assert.Error(t, err)

	_, err = DecodeUsers(nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestClientRegionAndCountry(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/region_code/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("CA\n"))
	})
	mux.HandleFunc("/country/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("US"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(
		WithRegionEndpoints(srv.URL+"/region_code/", srv.URL+"/country/"),
		WithAggregator(promises.NewAggregator(2)),
	)
	loc, err := f.ClientRegionAndCountry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &ClientLocation{RegionCode: "CA", Country: "US"}, loc)
}

func TestClientRegionAndCountryFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/region_code/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("CA"))
	})
	mux.HandleFunc("/country/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(WithRegionEndpoints(srv.URL+"/region_code/", srv.URL+"/country/"))
	loc, err := f.ClientRegionAndCountry(context.Background())
	assert.Nil(t, loc)
	require.Error(t, err)

	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Unexpected Result", fetchErr.Message)
	assert.True(t, errors.IsAggregateError(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Response.StatusCode)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

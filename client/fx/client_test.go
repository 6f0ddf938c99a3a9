package fx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Latest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "PLN", r.URL.Query().Get("to"))
		w.Write([]byte(`{"base":"USD","date":"2024-05-01","rates":{"PLN":4.0}}`))
	}))
	defer server.Close()

	client := NewClient().WithURL(server.URL)
	rates, err := client.Latest(context.Background(), model.USD, model.PLN)
	require.NoError(t, err)
	assert.Equal(t, 4.0, rates[model.PLN])
}

func TestClient_LatestMissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","date":"2024-05-01","rates":{}}`))
	}))
	defer server.Close()

	client := NewClient().WithURL(server.URL)
	rates, err := client.Latest(context.Background(), model.USD, model.PLN)
	require.NoError(t, err)
	// a missing key is a valid, handleable response
	_, ok := rates[model.PLN]
	assert.False(t, ok)
}

func TestClient_History(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "..")
		w.Write([]byte(`{"base":"USD","rates":{
			"2024-05-02":{"PLN":4.1},
			"2024-05-01":{"PLN":4.0}
		}}`))
	}))
	defer server.Close()

	client := NewClient().WithURL(server.URL)
	end := time.Now()
	rates, err := client.History(context.Background(), model.USD, model.PLN, end.AddDate(0, 0, -7), end)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, 4.0, rates["2024-05-01"][model.PLN])
	assert.Equal(t, 4.1, rates["2024-05-02"][model.PLN])
}

func TestClient_Currencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currencies", r.URL.Path)
		w.Write([]byte(`{"USD":"United States Dollar","PLN":"Polish Złoty"}`))
	}))
	defer server.Close()

	client := NewClient().WithURL(server.URL)
	currencies, err := client.Currencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Polish Złoty", currencies["PLN"])
}

func TestClient_Errors(t *testing.T) {

	type test struct {
		handler http.HandlerFunc
	}

	tests := map[string]test{
		"not-found": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		"bad-payload": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{broken`))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient().WithURL(server.URL)
			_, err := client.Latest(context.Background(), model.USD, model.PLN)
			assert.True(t, errors.Is(err, model.ProviderErr))
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient().WithURL("http://127.0.0.1:1")
		_, err := client.Latest(context.Background(), model.USD, model.PLN)
		assert.True(t, errors.Is(err, model.ProviderErr))
	})
}

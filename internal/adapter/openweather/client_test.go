package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCurrentTempC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Lisbon" {
			t.Errorf("expected city query Lisbon, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected metric units, got %q", got)
		}
		w.Write([]byte(`{"main":{"temp":27.4}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "key", time.Second, zap.NewNop())
	if got := c.CurrentTempC(context.Background(), "Lisbon"); got != 27.4 {
		t.Errorf("CurrentTempC = %v; want 27.4", got)
	}
}

func TestCurrentTempCDefaults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{"missing temp field", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"main":{}}`))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := New(srv.URL, "key", time.Second, zap.NewNop())
			if got := c.CurrentTempC(context.Background(), "Nowhere"); got != 20.0 {
				t.Errorf("CurrentTempC = %v; want default 20.0", got)
			}
		})
	}
}

func TestCurrentTempCUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:0", "key", 100*time.Millisecond, zap.NewNop())
	if got := c.CurrentTempC(context.Background(), "Lisbon"); got != 20.0 {
		t.Errorf("CurrentTempC = %v; want default 20.0", got)
	}
}

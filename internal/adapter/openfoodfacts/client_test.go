package openfoodfacts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kcalbot/internal/domain"
)

func TestFindFirstMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_terms"); got != "banana" {
			t.Errorf("expected search_terms banana, got %q", got)
		}
		w.Write([]byte(`{"products":[
			{"product_name":"Banana","nutriments":{"proteins_100g":1.1,"fat_100g":0.3,"carbohydrates_100g":22.8,"energy-kcal_100g":89}},
			{"product_name":"Banana chips","nutriments":{}}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	info, err := c.Find(context.Background(), "banana")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if info.Name != "Banana" {
		t.Errorf("expected first match Banana, got %q", info.Name)
	}
	if info.Protein100g != 1.1 || info.Fat100g != 0.3 || info.Carb100g != 22.8 || info.OfficialKcal100g != 89 {
		t.Errorf("unexpected macros: %+v", info)
	}
}

func TestFindNoProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Find(context.Background(), "unobtainium")
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestFindEmptyNameFallsBackToQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"nutriments":{"energy-kcal_100g":50}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	info, err := c.Find(context.Background(), "mystery snack")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if info.Name != "mystery snack" {
		t.Errorf("expected query echoed as name, got %q", info.Name)
	}
}

func TestFindTimeoutSurfacesAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 50*time.Millisecond)
	_, err := c.Find(context.Background(), "slow")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if errors.Is(err, domain.ErrFoodNotFound) {
		t.Fatal("timeout must not masquerade as not-found")
	}
}

func TestFindServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.Find(context.Background(), "bread"); err == nil {
		t.Fatal("expected error on non-OK status")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Wroclaw" {
			t.Errorf("name query param: got %q, want %q", got, "Wroclaw")
		}
		if got := r.URL.Query().Get("count"); got != "5" {
			t.Errorf("count query param: got %q, want %q", got, "5")
		}
		fmt.Fprint(w, `{"results":[
			{"name":"Wrocław","latitude":51.1,"longitude":17.03,"country_code":"PL","admin1":"Lower Silesia","timezone":"Europe/Warsaw"},
			{"name":"Wroclaw","latitude":41.24,"longitude":-80.12,"country_code":"US"}
		]}`)
	}))
	defer server.Close()

	service := NewOpenMeteoGeocodingService(server.URL, server.Client())
	candidates, err := service.Geocode(context.Background(), "Wroclaw")
	if err != nil {
		t.Fatalf("Geocode failed with error: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	first := candidates[0]
	if first.Name != "Wrocław" {
		t.Errorf("Name: got %q, want %q", first.Name, "Wrocław")
	}
	if first.Latitude != 51.1 || first.Longitude != 17.03 {
		t.Errorf("coordinates: got (%f, %f), want (51.1, 17.03)", first.Latitude, first.Longitude)
	}
	if first.CountryCode != "PL" {
		t.Errorf("CountryCode: got %q, want %q", first.CountryCode, "PL")
	}
	if first.Admin1 != "Lower Silesia" {
		t.Errorf("Admin1: got %q, want %q", first.Admin1, "Lower Silesia")
	}
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"generationtime_ms":0.5}`)
	}))
	defer server.Close()

	service := NewOpenMeteoGeocodingService(server.URL, server.Client())
	_, err := service.Geocode(context.Background(), "Nowhereville")
	if !errors.Is(err, ErrNoResultsFound) {
		t.Errorf("got %v, want ErrNoResultsFound", err)
	}
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewOpenMeteoGeocodingService(server.URL, server.Client())
	_, err := service.Geocode(context.Background(), "Wroclaw")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

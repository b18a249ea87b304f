package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ppgain/perf"
)

func calcServer(t *testing.T, pp float64, got *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calculate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprintf(w, `{"pp": %v}`, pp)
	}))
}

func TestHTTPCalculatorCatchPayload(t *testing.T) {
	var got map[string]any
	srv := calcServer(t, 123.45, &got)
	defer srv.Close()

	combo := uint32(700)
	in := perf.BuildInput(perf.ModeCatch, 64, &combo, perf.CatchCounts{
		Fruits: 500, Droplets: 100, TinyDroplets: 50, TinyDropletMisses: 0, Misses: 0,
	})
	calc := &HTTPCalculator{URL: srv.URL}
	mapBytes := []byte("osu file format v14\n")

	pp, err := calc.Compute(context.Background(), mapBytes, in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if pp != 123.45 {
		t.Fatalf("pp = %v, want 123.45", pp)
	}

	want := map[string]float64{
		"n300": 500, "large_tick_hits": 100, "small_tick_hits": 50,
		"n_katu": 0, "misses": 0, "mods": 64, "combo": 700,
	}
	for key, v := range want {
		raw, ok := got[key]
		if !ok {
			t.Fatalf("payload missing %q: %v", key, got)
		}
		if raw.(float64) != v {
			t.Fatalf("payload %s = %v, want %v", key, raw, v)
		}
	}
	for _, absent := range []string{"n_geki", "n100", "n50", "accuracy"} {
		if _, ok := got[absent]; ok {
			t.Fatalf("payload carries %q for a catch play: %v", absent, got)
		}
	}
	if got["mode"] != "fruits" {
		t.Fatalf("payload mode = %v, want fruits", got["mode"])
	}
	decoded, err := base64.StdEncoding.DecodeString(got["beatmap"].(string))
	if err != nil || string(decoded) != string(mapBytes) {
		t.Fatalf("beatmap bytes did not round-trip: %v %q", err, decoded)
	}
}

func TestHTTPCalculatorSimplePayload(t *testing.T) {
	var got map[string]any
	srv := calcServer(t, 99, &got)
	defer srv.Close()

	simple, err := perf.NewSimple(98.5, 2)
	if err != nil {
		t.Fatalf("NewSimple: %v", err)
	}
	in := perf.BuildInput(perf.ModeOsu, 0, nil, simple)
	if _, err := (&HTTPCalculator{URL: srv.URL}).Compute(context.Background(), []byte("x"), in); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if got["accuracy"].(float64) != 98.5 || got["misses"].(float64) != 2 {
		t.Fatalf("simple payload wrong: %v", got)
	}
	for _, absent := range []string{"n300", "combo"} {
		if _, ok := got[absent]; ok {
			t.Fatalf("simple payload carries %q: %v", absent, got)
		}
	}
}

func TestHTTPCalculatorPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "beatmap is suspicious", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	simple, _ := perf.NewSimple(100, 0)
	in := perf.BuildInput(perf.ModeOsu, 0, nil, simple)
	_, err := (&HTTPCalculator{URL: srv.URL}).Compute(context.Background(), []byte("x"), in)
	if err == nil {
		t.Fatalf("server failure did not surface")
	}
}

func TestHTTPCalculatorErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"pp": 0, "error": "malformed beatmap"}`)
	}))
	defer srv.Close()

	simple, _ := perf.NewSimple(100, 0)
	in := perf.BuildInput(perf.ModeOsu, 0, nil, simple)
	_, err := (&HTTPCalculator{URL: srv.URL}).Compute(context.Background(), []byte("x"), in)
	if err == nil {
		t.Fatalf("error field did not surface")
	}
}

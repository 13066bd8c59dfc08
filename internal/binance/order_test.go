package binance

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// queryKeys returns the parameter names in wire order.
func queryKeys(raw string) string {
	var keys []string
	for _, kv := range strings.Split(raw, "&") {
		if i := strings.Index(kv, "="); i >= 0 {
			keys = append(keys, kv[:i])
		}
	}
	return strings.Join(keys, ",")
}

func placeOrderCapture(t *testing.T, order OrderRequest) (string, *Response) {
	t.Helper()
	var raw string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/fapi/v1/order" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw = r.URL.RawQuery
		w.Write([]byte(`{"orderId":1,"status":"NEW"}`))
	})
	resp := client.PlaceOrder(context.Background(), order)
	if resp.IsError() {
		t.Fatalf("unexpected transport error: %s", resp.Err())
	}
	return raw, resp
}

func TestPlaceOrderMarket(t *testing.T) {
	raw, _ := placeOrderCapture(t, OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     Buy,
		Type:     Market,
		Quantity: 0.01,
	})

	want := "symbol,side,type,quantity,timestamp,signature"
	if got := queryKeys(raw); got != want {
		t.Fatalf("params = %s, want %s", got, want)
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if vals.Get("type") != "MARKET" || vals.Get("quantity") != "0.01" {
		t.Fatalf("unexpected values: %s", raw)
	}
}

func TestPlaceOrderLimit(t *testing.T) {
	price := 50000.0
	raw, _ := placeOrderCapture(t, OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     Sell,
		Type:     Limit,
		Quantity: 0.5,
		Price:    &price,
	})

	want := "symbol,side,type,quantity,price,timeInForce,timestamp,signature"
	if got := queryKeys(raw); got != want {
		t.Fatalf("params = %s, want %s", got, want)
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if vals.Get("price") != "50000" {
		t.Fatalf("price = %s, want 50000", vals.Get("price"))
	}
	if vals.Get("timeInForce") != "GTC" {
		t.Fatalf("timeInForce = %s, want GTC", vals.Get("timeInForce"))
	}
}

func TestPlaceOrderStopLimit(t *testing.T) {
	price := 49500.5
	stop := 49800.0
	raw, _ := placeOrderCapture(t, OrderRequest{
		Symbol:    "BTCUSDT",
		Side:      Sell,
		Type:      Stop,
		Quantity:  0.25,
		Price:     &price,
		StopPrice: &stop,
	})

	want := "symbol,side,type,quantity,stopPrice,price,timeInForce,timestamp,signature"
	if got := queryKeys(raw); got != want {
		t.Fatalf("params = %s, want %s", got, want)
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if vals.Get("stopPrice") != "49800" || vals.Get("price") != "49500.5" {
		t.Fatalf("unexpected prices: %s", raw)
	}
}

func TestPlaceOrderWithoutPriceStillSubmits(t *testing.T) {
	// Client-side validation is deliberately absent; the exchange is the
	// judge of incomplete orders.
	var raw string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1102,"msg":"Mandatory parameter 'price' was not sent."}`))
	})

	resp := client.PlaceOrder(context.Background(), OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     Buy,
		Type:     Limit,
		Quantity: 1,
	})
	if resp.IsError() {
		t.Fatalf("rejection should carry the body, got transport error %s", resp.Err())
	}

	want := "symbol,side,type,quantity,timeInForce,timestamp,signature"
	if got := queryKeys(raw); got != want {
		t.Fatalf("params = %s, want %s", got, want)
	}
	if code, _, ok := resp.APIError(); !ok || code != -1102 {
		t.Fatalf("expected exchange rejection to surface, got %s", resp.String())
	}
}

package binance

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestResponseBody(t *testing.T) {
	r := NewResponse([]byte(`{"orderId":1}`))
	if r.IsError() {
		t.Fatalf("expected body response, got error %s", r.Err())
	}
	if r.String() != `{"orderId":1}` {
		t.Fatalf("String = %s", r.String())
	}
}

func TestErrorResponseRendersErrorDocument(t *testing.T) {
	r := errorResponse(errors.New("connection refused"))
	if !r.IsError() {
		t.Fatalf("expected error response")
	}
	if r.Err() != "connection refused" {
		t.Fatalf("Err = %s", r.Err())
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"error":"connection refused"}` {
		t.Fatalf("marshaled = %s", data)
	}
	if !strings.Contains(r.String(), "connection refused") {
		t.Fatalf("String = %s", r.String())
	}
}

func TestResponseDecode(t *testing.T) {
	r := NewResponse([]byte(`[{"asset":"USDT"}]`))
	var entries []struct {
		Asset string `json:"asset"`
	}
	if err := r.Decode(&entries); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Asset != "USDT" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	bad := errorResponse(errors.New("boom"))
	if err := bad.Decode(&entries); err == nil {
		t.Fatalf("expected decode of transport error to fail")
	}
}

func TestResponseField(t *testing.T) {
	r := NewResponse([]byte(`{"orderId":42,"status":"NEW"}`))
	raw, ok := r.Field("orderId")
	if !ok || string(raw) != "42" {
		t.Fatalf("Field(orderId) = %s, %v", raw, ok)
	}
	if _, ok := r.Field("price"); ok {
		t.Fatalf("expected price to be absent")
	}

	arr := NewResponse([]byte(`[1,2,3]`))
	if _, ok := arr.Field("orderId"); ok {
		t.Fatalf("expected array body to have no fields")
	}
}

func TestResponseAPIError(t *testing.T) {
	r := NewResponse([]byte(`{"code":-2019,"msg":"Margin is insufficient."}`))
	code, msg, ok := r.APIError()
	if !ok {
		t.Fatalf("expected API error to decode")
	}
	if code != -2019 || !strings.Contains(msg, "Margin") {
		t.Fatalf("APIError = %d, %s", code, msg)
	}

	success := NewResponse([]byte(`{"orderId":1}`))
	if _, _, ok := success.APIError(); ok {
		t.Fatalf("expected success body to report no API error")
	}
	arr := NewResponse([]byte(`[]`))
	if _, _, ok := arr.APIError(); ok {
		t.Fatalf("expected array body to report no API error")
	}
}

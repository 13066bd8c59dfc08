package binance

import (
	"encoding/json"
	"fmt"
)

// Response is the outcome of an exchange call: either a raw JSON body or a
// transport error message. Failures never escape the client as Go errors, so
// callers can print whatever came back without special-casing them.
type Response struct {
	body json.RawMessage
	err  string
}

// NewResponse wraps a raw JSON body. Intended for alternate transports and
// test doubles; the client builds its own responses.
func NewResponse(body []byte) *Response {
	return &Response{body: json.RawMessage(body)}
}

func errorResponse(err error) *Response {
	return &Response{err: err.Error()}
}

// IsError reports whether the response carries a transport error instead of
// an exchange body.
func (r *Response) IsError() bool { return r.err != "" }

// Err returns the transport error message, empty for body-backed responses.
func (r *Response) Err() string { return r.err }

// Decode unmarshals the body into v. Transport errors decode nothing.
func (r *Response) Decode(v any) error {
	if r.err != "" {
		return fmt.Errorf("transport error: %s", r.err)
	}
	return json.Unmarshal(r.body, v)
}

// Field extracts a top-level member of an object body, reporting whether it
// is present. Array bodies and transport errors have no fields.
func (r *Response) Field(name string) (json.RawMessage, bool) {
	if r.err != "" {
		return nil, false
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(r.body, &doc); err != nil {
		return nil, false
	}
	raw, ok := doc[name]
	return raw, ok
}

// apiError is the document Binance returns for rejected requests.
type apiError struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// APIError decodes a Binance error body. Success bodies carry no code and
// report false.
func (r *Response) APIError() (int64, string, bool) {
	if r.err != "" {
		return 0, "", false
	}
	var e apiError
	if err := json.Unmarshal(r.body, &e); err != nil || e.Code == 0 {
		return 0, "", false
	}
	return e.Code, e.Msg, true
}

// MarshalJSON renders the original body, or {"error": message} for transport
// failures.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.err != "" {
		return json.Marshal(map[string]string{"error": r.err})
	}
	if r.body == nil {
		return []byte("null"), nil
	}
	return r.body, nil
}

// String renders the printable form shown to the operator.
func (r *Response) String() string {
	if r.err != "" {
		data, _ := json.Marshal(map[string]string{"error": r.err})
		return string(data)
	}
	if r.body == nil {
		return "null"
	}
	return string(r.body)
}

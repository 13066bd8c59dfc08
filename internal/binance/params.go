package binance

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered set of request parameters. Binance verifies the
// signature against the exact query string it receives, so encoding must
// preserve insertion order rather than sort keys the way url.Values does.
type Params struct {
	pairs []param
}

type param struct {
	key   string
	value string
}

// NewParams returns an empty ordered parameter set.
func NewParams() *Params { return &Params{} }

// Set stores value under key. An existing entry is replaced in place so its
// original position is kept.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.pairs = append(p.pairs, param{key: key, value: value})
}

// SetFloat stores v using the shortest representation that survives a round
// trip, e.g. 50000 rather than 50000.000000.
func (p *Params) SetFloat(key string, v float64) {
	p.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// SetInt stores v in base 10.
func (p *Params) SetInt(key string, v int64) {
	p.Set(key, strconv.FormatInt(v, 10))
}

// Get returns the value stored under key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value, true
		}
	}
	return "", false
}

// Len reports the number of parameters.
func (p *Params) Len() int { return len(p.pairs) }

// Encode renders the URL-encoded query string in insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

package binance

import (
	"context"

	"github.com/soumadipchangder/Trading-Bot/internal/metrics"
)

// Side enumerates order directions.
type Side string

const (
	// Buy opens or adds to a long position.
	Buy Side = "BUY"
	// Sell opens or adds to a short position.
	Sell Side = "SELL"
)

// OrderType enumerates the order flavors the menu exposes.
type OrderType string

const (
	Market OrderType = "MARKET"
	Limit  OrderType = "LIMIT"
	// Stop is a stop-limit: a trigger price plus a limit price.
	Stop OrderType = "STOP"
)

// GTC keeps LIMIT and STOP orders resting until filled or cancelled.
const GTC = "GTC"

// OrderRequest describes one placement. Price and StopPrice apply only to
// the order types that use them; validation is left to the exchange.
type OrderRequest struct {
	Symbol    string
	Side      Side
	Type      OrderType
	Quantity  float64
	Price     *float64
	StopPrice *float64
}

// PlaceOrder submits the order and returns whatever the exchange said.
// LIMIT adds price and timeInForce; STOP adds stopPrice, price, and
// timeInForce. Parameter order is fixed because it feeds the signature.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) *Response {
	params := NewParams()
	params.Set("symbol", order.Symbol)
	params.Set("side", string(order.Side))
	params.Set("type", string(order.Type))
	params.SetFloat("quantity", order.Quantity)
	switch order.Type {
	case Limit:
		if order.Price != nil {
			params.SetFloat("price", *order.Price)
		}
		params.Set("timeInForce", GTC)
	case Stop:
		if order.StopPrice != nil {
			params.SetFloat("stopPrice", *order.StopPrice)
		}
		if order.Price != nil {
			params.SetFloat("price", *order.Price)
		}
		params.Set("timeInForce", GTC)
	}

	metrics.OrdersTotal.WithLabelValues(order.Symbol, string(order.Side), string(order.Type)).Inc()
	c.log.Info().
		Str("symbol", order.Symbol).
		Str("side", string(order.Side)).
		Str("type", string(order.Type)).
		Float64("qty", order.Quantity).
		Msg("placing order")
	return c.Post(ctx, "/fapi/v1/order", params)
}

package binance

import (
	"context"
	"strconv"
)

// balanceEntry is one row of the /fapi/v2/balance response. Binance encodes
// amounts as strings.
type balanceEntry struct {
	Asset             string `json:"asset"`
	Balance           string `json:"balance"`
	WithdrawAvailable string `json:"withdrawAvailable"`
}

// Balance fetches the withdrawable amount for asset. Missing assets and
// malformed responses log an error and yield 0 so the menu keeps running.
func (c *Client) Balance(ctx context.Context, asset string) float64 {
	resp := c.Get(ctx, "/fapi/v2/balance", nil)
	if resp.IsError() {
		c.log.Error().Str("asset", asset).Str("error", resp.Err()).Msg("balance fetch failed")
		return 0
	}

	var entries []balanceEntry
	if err := resp.Decode(&entries); err != nil {
		c.log.Error().Err(err).Str("asset", asset).Msg("unexpected balance response")
		return 0
	}
	for _, entry := range entries {
		if entry.Asset != asset {
			continue
		}
		if entry.WithdrawAvailable == "" {
			entry.WithdrawAvailable = "0"
		}
		available, err := strconv.ParseFloat(entry.WithdrawAvailable, 64)
		if err != nil {
			c.log.Error().Err(err).Str("asset", asset).Msg("unexpected balance response")
			return 0
		}
		c.log.Info().Str("asset", asset).Float64("available", available).Msg("balance")
		return available
	}
	c.log.Error().Str("asset", asset).Msg("asset not found in balance response")
	return 0
}

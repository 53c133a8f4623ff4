package client

import (
	"context"
	"encoding/json"

	"github.com/betbot/gokraken/kraken/types"
)

// Time returns the exchange server's clock.
func (c *Client) Time(ctx context.Context) (*types.ServerTime, error) {
	out := &types.ServerTime{}
	if err := c.queryPublic(ctx, "Time", 1, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SystemStatus returns the current trading mode.
func (c *Client) SystemStatus(ctx context.Context) (*types.SystemStatus, error) {
	out := &types.SystemStatus{}
	if err := c.queryPublic(ctx, "SystemStatus", 1, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssetsOpts narrows an Assets query. Zero values are omitted.
type AssetsOpts struct {
	Asset  string // comma-delimited list, default all
	Aclass string // default "currency"
}

// Assets lists the assets available for trading, deposit and staking.
func (c *Client) Assets(ctx context.Context, opts *AssetsOpts) (map[string]types.Asset, error) {
	params := Params{}
	if opts != nil {
		params["asset"] = opts.Asset
		params["aclass"] = opts.Aclass
	}
	out := map[string]types.Asset{}
	if err := c.queryPublic(ctx, "Assets", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssetPairsOpts narrows an AssetPairs query.
type AssetPairsOpts struct {
	Pair string // comma-delimited list, default all
	Info string // all, leverage, fees or margin
}

// AssetPairs lists tradable pairs and their constraints.
func (c *Client) AssetPairs(ctx context.Context, opts *AssetPairsOpts) (map[string]types.AssetPair, error) {
	params := Params{}
	if opts != nil {
		params["pair"] = opts.Pair
		params["info"] = opts.Info
	}
	out := map[string]types.AssetPair{}
	if err := c.queryPublic(ctx, "AssetPairs", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ticker returns today's price summary for the given pairs
// (comma-delimited), keyed by normalized pair name.
func (c *Client) Ticker(ctx context.Context, pair string) (map[string]types.Ticker, error) {
	out := map[string]types.Ticker{}
	if err := c.queryPublic(ctx, "Ticker", 1, Params{"pair": pair}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OHLC returns the candle series for one pair. interval is in minutes
// (1, 5, 15, 30, 60, 240, 1440, 10080, 21600); since of 0 means from
// the earliest available frame.
func (c *Client) OHLC(ctx context.Context, pair string, interval int, since int64) (*types.OHLC, error) {
	params := Params{"pair": pair, "interval": interval}
	if since > 0 {
		params["since"] = since
	}
	var result json.RawMessage
	if err := c.queryPublic(ctx, "OHLC", 2, params, &result); err != nil {
		return nil, err
	}

	key, rows, last, err := pairResult(result, pair)
	if err != nil {
		return nil, err
	}
	out := &types.OHLC{Pair: key}
	if err := decodeResult(rows, &out.Candles); err != nil {
		return nil, err
	}
	if err := decodeResult(last, &out.Last); err != nil {
		return nil, err
	}
	return out, nil
}

// Depth returns up to count levels of the order book for one pair.
func (c *Client) Depth(ctx context.Context, pair string, count int) (*types.Depth, error) {
	params := Params{"pair": pair}
	if count > 0 {
		params["count"] = count
	}
	var result json.RawMessage
	if err := c.queryPublic(ctx, "Depth", 1, params, &result); err != nil {
		return nil, err
	}

	_, rows, _, err := pairResult(result, pair)
	if err != nil {
		return nil, err
	}
	out := &types.Depth{}
	if err := decodeResult(rows, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trades returns recent public trades for one pair, most recent last,
// plus the cursor to pass as since on the next poll.
func (c *Client) Trades(ctx context.Context, pair string, since string) (*types.Trades, error) {
	params := Params{"pair": pair, "since": since}
	var result json.RawMessage
	if err := c.queryPublic(ctx, "Trades", 2, params, &result); err != nil {
		return nil, err
	}

	key, rows, last, err := pairResult(result, pair)
	if err != nil {
		return nil, err
	}
	out := &types.Trades{Pair: key}
	if err := decodeResult(rows, &out.Trades); err != nil {
		return nil, err
	}
	if err := decodeResult(last, &out.Last); err != nil {
		return nil, err
	}
	return out, nil
}

// Spread returns recent bid/ask samples for one pair plus the polling
// cursor.
func (c *Client) Spread(ctx context.Context, pair string, since int64) (*types.Spreads, error) {
	params := Params{"pair": pair}
	if since > 0 {
		params["since"] = since
	}
	var result json.RawMessage
	if err := c.queryPublic(ctx, "Spread", 1, params, &result); err != nil {
		return nil, err
	}

	key, rows, last, err := pairResult(result, pair)
	if err != nil {
		return nil, err
	}
	out := &types.Spreads{Pair: key}
	if err := decodeResult(rows, &out.Spreads); err != nil {
		return nil, err
	}
	if err := decodeResult(last, &out.Last); err != nil {
		return nil, err
	}
	return out, nil
}

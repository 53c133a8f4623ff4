package client

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/betbot/gokraken/kraken/types"
)

// Balance returns all cash balances, keyed by asset name.
func (c *Client) Balance(ctx context.Context) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if err := c.queryPrivate(ctx, "Balance", 1, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradeBalance summarizes the account in the given quote asset
// (default ZEUR).
func (c *Client) TradeBalance(ctx context.Context, asset string) (*types.TradeBalance, error) {
	if asset == "" {
		asset = "ZEUR"
	}
	out := &types.TradeBalance{}
	if err := c.queryPrivate(ctx, "TradeBalance", 1, Params{"asset": asset}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenOrdersOpts narrows an OpenOrders query.
type OpenOrdersOpts struct {
	Trades  bool   // include related trades
	Userref string // restrict to a user reference id
}

// OpenOrders returns the account's open orders keyed by txid.
func (c *Client) OpenOrders(ctx context.Context, opts *OpenOrdersOpts) (*types.OpenOrders, error) {
	params := Params{}
	if opts != nil {
		params["trades"] = opts.Trades
		params["userref"] = opts.Userref
	}
	out := &types.OpenOrders{}
	if err := c.queryPrivate(ctx, "OpenOrders", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClosedOrdersOpts narrows a ClosedOrders query.
type ClosedOrdersOpts struct {
	Trades    bool
	Userref   string
	Start     int64 // unix timestamp or order tx id via StartTxid
	End       int64
	Offset    int
	CloseTime string // open, close or both (default)
}

// ClosedOrders returns a page of order history.
func (c *Client) ClosedOrders(ctx context.Context, opts *ClosedOrdersOpts) (*types.ClosedOrders, error) {
	params := Params{}
	if opts != nil {
		params["trades"] = opts.Trades
		params["userref"] = opts.Userref
		if opts.Start > 0 {
			params["start"] = opts.Start
		}
		if opts.End > 0 {
			params["end"] = opts.End
		}
		if opts.Offset > 0 {
			params["ofs"] = opts.Offset
		}
		params["closetime"] = opts.CloseTime
	}
	out := &types.ClosedOrders{}
	if err := c.queryPrivate(ctx, "ClosedOrders", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOrders looks up specific orders (up to 50 txids) regardless of
// their state.
func (c *Client) QueryOrders(ctx context.Context, txids []string, includeTrades bool) (map[string]types.Order, error) {
	params := Params{
		"txid":   strings.Join(txids, ","),
		"trades": includeTrades,
	}
	out := map[string]types.Order{}
	if err := c.queryPrivate(ctx, "QueryOrders", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradesHistoryOpts narrows a TradesHistory query.
type TradesHistoryOpts struct {
	Type   string // all (default), any position, closed position, closing position, no position
	Trades bool
	Start  int64
	End    int64
	Offset int
}

// TradesHistory returns a page of the account's executed trades.
func (c *Client) TradesHistory(ctx context.Context, opts *TradesHistoryOpts) (*types.TradesHistory, error) {
	params := Params{}
	if opts != nil {
		params["type"] = opts.Type
		params["trades"] = opts.Trades
		if opts.Start > 0 {
			params["start"] = opts.Start
		}
		if opts.End > 0 {
			params["end"] = opts.End
		}
		if opts.Offset > 0 {
			params["ofs"] = opts.Offset
		}
	}
	out := &types.TradesHistory{}
	if err := c.queryPrivate(ctx, "TradesHistory", 2, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryTrades looks up specific trades (up to 20 txids).
func (c *Client) QueryTrades(ctx context.Context, txids []string, includeTrades bool) (map[string]types.TradeInfo, error) {
	params := Params{
		"txid":   strings.Join(txids, ","),
		"trades": includeTrades,
	}
	out := map[string]types.TradeInfo{}
	if err := c.queryPrivate(ctx, "QueryTrades", 2, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenPositionsOpts narrows an OpenPositions query.
type OpenPositionsOpts struct {
	Txids         []string
	DoCalcs       bool   // include profit/loss calculations
	Consolidation string // "market" consolidates positions by market
}

// OpenPositions returns the account's open margin positions.
func (c *Client) OpenPositions(ctx context.Context, opts *OpenPositionsOpts) (map[string]types.Position, error) {
	params := Params{}
	if opts != nil {
		params["txid"] = strings.Join(opts.Txids, ",")
		params["docalcs"] = opts.DoCalcs
		params["consolidation"] = opts.Consolidation
	}
	out := map[string]types.Position{}
	if err := c.queryPrivate(ctx, "OpenPositions", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LedgersOpts narrows a Ledgers query.
type LedgersOpts struct {
	Asset  string // comma-delimited, default all
	Aclass string
	Type   string // all (default), deposit, withdrawal, trade, margin, staking
	Start  int64
	End    int64
	Offset int
}

// Ledgers returns a page of ledger entries.
func (c *Client) Ledgers(ctx context.Context, opts *LedgersOpts) (*types.Ledgers, error) {
	params := Params{}
	if opts != nil {
		params["asset"] = opts.Asset
		params["aclass"] = opts.Aclass
		params["type"] = opts.Type
		if opts.Start > 0 {
			params["start"] = opts.Start
		}
		if opts.End > 0 {
			params["end"] = opts.End
		}
		if opts.Offset > 0 {
			params["ofs"] = opts.Offset
		}
	}
	out := &types.Ledgers{}
	if err := c.queryPrivate(ctx, "Ledgers", 2, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryLedgers looks up specific ledger entries (up to 20 ids).
func (c *Client) QueryLedgers(ctx context.Context, ids []string) (map[string]types.LedgerEntry, error) {
	params := Params{"id": strings.Join(ids, ",")}
	out := map[string]types.LedgerEntry{}
	if err := c.queryPrivate(ctx, "QueryLedgers", 2, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradeVolume returns the 30-day volume and the fee schedule for the
// given pairs (comma-delimited).
func (c *Client) TradeVolume(ctx context.Context, pair string) (*types.TradeVolume, error) {
	params := Params{"pair": pair, "fee-info": true}
	out := &types.TradeVolume{}
	if err := c.queryPrivate(ctx, "TradeVolume", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

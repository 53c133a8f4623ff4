package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/betbot/gokraken/kraken/types"
)

// AddOrderRequest is a new order. Pair, Type, OrderType and Volume are
// required; everything else is optional and omitted when zero. Prices
// and volumes are decimals so the signed body never carries scientific
// notation.
type AddOrderRequest struct {
	Pair      string
	Type      string // buy or sell
	OrderType string // market, limit, stop-loss, take-profit, stop-loss-limit, take-profit-limit, settle-position
	Volume    decimal.Decimal

	Price    decimal.Decimal // limit price, stop price etc. per OrderType
	Price2   decimal.Decimal // secondary price for two-price order types
	Leverage string
	Oflags   string // comma-delimited: post, fcib, fciq, nompp, viqc
	StartTm  string // scheduled start, 0/absent for now
	ExpireTm string // expiration, 0/absent for never
	Userref  string

	// Validate submits the order for validation only; the exchange
	// checks it without placing it and returns no txid.
	Validate bool

	// Optional conditional close attached to the order.
	CloseOrderType string
	ClosePrice     decimal.Decimal
	ClosePrice2    decimal.Decimal
}

func (r *AddOrderRequest) params() Params {
	params := Params{
		"pair":              r.Pair,
		"type":              r.Type,
		"ordertype":         r.OrderType,
		"volume":            r.Volume,
		"leverage":          r.Leverage,
		"oflags":            r.Oflags,
		"starttm":           r.StartTm,
		"expiretm":          r.ExpireTm,
		"userref":           r.Userref,
		"validate":          r.Validate,
		"trading_agreement": "agree",
	}
	// Zero-valued decimals mean "not set"; a literal zero price is
	// never a valid order price on this venue.
	if !r.Price.IsZero() {
		params["price"] = r.Price
	}
	if !r.Price2.IsZero() {
		params["price2"] = r.Price2
	}
	if r.CloseOrderType != "" {
		params["close[ordertype]"] = r.CloseOrderType
		if !r.ClosePrice.IsZero() {
			params["close[price]"] = r.ClosePrice
		}
		if !r.ClosePrice2.IsZero() {
			params["close[price2]"] = r.ClosePrice2
		}
	}
	return params
}

// AddOrder places (or, with Validate, checks) a standard order.
func (c *Client) AddOrder(ctx context.Context, req AddOrderRequest) (*types.AddOrderResult, error) {
	out := &types.AddOrderResult{}
	if err := c.queryPrivate(ctx, "AddOrder", 1, req.params(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder cancels one open order (or an order set) by txid or
// userref.
func (c *Client) CancelOrder(ctx context.Context, txid string) (*types.CancelResult, error) {
	out := &types.CancelResult{}
	if err := c.queryPrivate(ctx, "CancelOrder", 1, Params{"txid": txid}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelAllOrders cancels every open order.
func (c *Client) CancelAllOrders(ctx context.Context) (*types.CancelResult, error) {
	out := &types.CancelResult{}
	if err := c.queryPrivate(ctx, "CancelAll", 1, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelAllOrdersAfter arms the dead man's switch: unless extended,
// all orders are cancelled once timeoutSec elapses. A timeout of 0
// disables the timer.
func (c *Client) CancelAllOrdersAfter(ctx context.Context, timeoutSec int) (*types.CancelAllAfterResult, error) {
	out := &types.CancelAllAfterResult{}
	if err := c.queryPrivate(ctx, "CancelAllOrdersAfter", 1, Params{"timeout": timeoutSec}, out); err != nil {
		return nil, err
	}
	return out, nil
}

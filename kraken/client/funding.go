package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/betbot/gokraken/kraken/types"
)

// DepositMethods lists the available deposit methods for an asset.
func (c *Client) DepositMethods(ctx context.Context, asset string) ([]types.DepositMethod, error) {
	var out []types.DepositMethod
	if err := c.queryPrivate(ctx, "DepositMethods", 1, Params{"asset": asset}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DepositAddresses returns deposit addresses for an asset and method.
// With generateNew set, a fresh address is created.
func (c *Client) DepositAddresses(ctx context.Context, asset, method string, generateNew bool) ([]types.DepositAddress, error) {
	params := Params{"asset": asset, "method": method, "new": generateNew}
	var out []types.DepositAddress
	if err := c.queryPrivate(ctx, "DepositAddresses", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DepositStatus returns the status of recent deposits for an asset.
func (c *Client) DepositStatus(ctx context.Context, asset, method string) ([]types.TransferStatus, error) {
	params := Params{"asset": asset, "method": method}
	var out []types.TransferStatus
	if err := c.queryPrivate(ctx, "DepositStatus", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithdrawInfo quotes the fee and limit for a withdrawal to a
// pre-configured withdrawal key.
func (c *Client) WithdrawInfo(ctx context.Context, asset, key string, amount decimal.Decimal) (*types.WithdrawInfo, error) {
	params := Params{"asset": asset, "key": key, "amount": amount}
	out := &types.WithdrawInfo{}
	if err := c.queryPrivate(ctx, "WithdrawInfo", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Withdraw sends funds to a pre-configured withdrawal key.
func (c *Client) Withdraw(ctx context.Context, asset, key string, amount decimal.Decimal) (*types.RefidResult, error) {
	params := Params{"asset": asset, "key": key, "amount": amount}
	out := &types.RefidResult{}
	if err := c.queryPrivate(ctx, "Withdraw", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithdrawStatus returns the status of recent withdrawals for an
// asset.
func (c *Client) WithdrawStatus(ctx context.Context, asset, method string) ([]types.TransferStatus, error) {
	params := Params{"asset": asset, "method": method}
	var out []types.TransferStatus
	if err := c.queryPrivate(ctx, "WithdrawStatus", 1, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithdrawCancel cancels a pending withdrawal. Cancellation cannot be
// guaranteed; it races the withdrawal's processing.
func (c *Client) WithdrawCancel(ctx context.Context, asset, refid string) (bool, error) {
	var out bool
	if err := c.queryPrivate(ctx, "WithdrawCancel", 1, Params{"asset": asset, "refid": refid}, &out); err != nil {
		return false, err
	}
	return out, nil
}

// WalletTransferToFutures moves funds from the spot wallet to the
// futures wallet.
func (c *Client) WalletTransferToFutures(ctx context.Context, asset string, amount decimal.Decimal) (*types.RefidResult, error) {
	params := Params{
		"asset":  asset,
		"from":   "Spot Wallet",
		"to":     "Futures Wallet",
		"amount": amount,
	}
	out := &types.RefidResult{}
	if err := c.queryPrivate(ctx, "WalletTransfer", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

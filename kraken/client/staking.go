package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/betbot/gokraken/kraken/types"
)

// StakeAsset stakes an amount of an asset using one of the methods
// reported by StakeableAssets. Requires withdrawal permission on the
// API key.
func (c *Client) StakeAsset(ctx context.Context, asset string, amount decimal.Decimal, method string) (*types.RefidResult, error) {
	params := Params{"asset": asset, "amount": amount, "method": method}
	out := &types.RefidResult{}
	if err := c.queryPrivate(ctx, "Stake", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnstakeAsset requests unstaking of a staked asset.
func (c *Client) UnstakeAsset(ctx context.Context, asset string, amount decimal.Decimal, method string) (*types.RefidResult, error) {
	params := Params{"asset": asset, "amount": amount, "method": method}
	out := &types.RefidResult{}
	if err := c.queryPrivate(ctx, "Unstake", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// StakeableAssets lists the assets the account can stake right now.
func (c *Client) StakeableAssets(ctx context.Context) ([]types.StakingAsset, error) {
	var out []types.StakingAsset
	if err := c.queryPrivate(ctx, "Staking/Assets", 1, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingStakingTransactions lists staking movements that have not
// settled yet.
func (c *Client) PendingStakingTransactions(ctx context.Context) ([]types.StakingTransaction, error) {
	var out []types.StakingTransaction
	if err := c.queryPrivate(ctx, "Staking/Pending", 1, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StakingTransactions lists up to the 1000 most recent settled staking
// movements.
func (c *Client) StakingTransactions(ctx context.Context) ([]types.StakingTransaction, error) {
	var out []types.StakingTransaction
	if err := c.queryPrivate(ctx, "Staking/Transactions", 1, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

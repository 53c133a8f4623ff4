package types

import "github.com/shopspring/decimal"

// StakingAsset is one asset that can be staked.
type StakingAsset struct {
	Asset         string                     `json:"asset"`
	StakingAsset  string                     `json:"staking_asset"`
	Method        string                     `json:"method"`
	OnChain       bool                       `json:"on_chain"`
	CanStake      bool                       `json:"can_stake"`
	CanUnstake    bool                       `json:"can_unstake"`
	MinimumAmount map[string]decimal.Decimal `json:"minimum_amount"`
}

// StakingTransaction is one staking or unstaking movement.
type StakingTransaction struct {
	Refid  string          `json:"refid"`
	Method string          `json:"method"`
	Aclass string          `json:"aclass"`
	Asset  string          `json:"asset"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
	Fee    decimal.Decimal `json:"fee"`
	Time   int64           `json:"time"`
}

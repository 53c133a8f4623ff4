package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DepositMethod is one way to deposit an asset. Limit is a string
// amount or the JSON literal false when there is no limit, so it is
// kept raw.
type DepositMethod struct {
	Method          string          `json:"method"`
	Limit           json.RawMessage `json:"limit"`
	Fee             decimal.Decimal `json:"fee"`
	AddressSetupFee json.RawMessage `json:"address-setup-fee"`
	GenAddress      bool            `json:"gen-address"`
}

// DepositAddress is one address for a deposit method.
type DepositAddress struct {
	Address  string `json:"address"`
	ExpireTm string `json:"expiretm"`
	New      bool   `json:"new"`
	Tag      string `json:"tag"`
}

// TransferStatus is one entry of recent deposit or withdrawal status.
type TransferStatus struct {
	Method     string          `json:"method"`
	Aclass     string          `json:"aclass"`
	Asset      string          `json:"asset"`
	Refid      string          `json:"refid"`
	Txid       string          `json:"txid"`
	Info       string          `json:"info"`
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	Time       int64           `json:"time"`
	Status     string          `json:"status"`
	StatusProp string          `json:"status-prop"`
}

// WithdrawInfo is the fee/limit quote for a pending withdrawal.
type WithdrawInfo struct {
	Method string          `json:"method"`
	Limit  decimal.Decimal `json:"limit"`
	Amount decimal.Decimal `json:"amount"`
	Fee    decimal.Decimal `json:"fee"`
}

// RefidResult is the reference id returned by withdrawal and wallet
// transfer endpoints.
type RefidResult struct {
	Refid string `json:"refid"`
}

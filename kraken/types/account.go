package types

import (
	"github.com/shopspring/decimal"
)

// TradeBalance summarizes the account in a quote asset.
type TradeBalance struct {
	EquivalentBalance decimal.Decimal `json:"eb"`
	TradeBalance      decimal.Decimal `json:"tb"`
	MarginUsed        decimal.Decimal `json:"m"`
	UnrealizedNet     decimal.Decimal `json:"n"`
	CostBasis         decimal.Decimal `json:"c"`
	Valuation         decimal.Decimal `json:"v"`
	Equity            decimal.Decimal `json:"e"`
	FreeMargin        decimal.Decimal `json:"mf"`
	MarginLevel       decimal.Decimal `json:"ml"`
}

// OrderDescription is the human-readable part of an order.
type OrderDescription struct {
	Pair      string          `json:"pair"`
	Type      string          `json:"type"`
	OrderType string          `json:"ordertype"`
	Price     decimal.Decimal `json:"price"`
	Price2    decimal.Decimal `json:"price2"`
	Leverage  string          `json:"leverage"`
	Order     string          `json:"order"`
	Close     string          `json:"close"`
}

// Order is one open or closed order, keyed by transaction id in the
// maps returned by OpenOrders/ClosedOrders.
type Order struct {
	Refid          string           `json:"refid"`
	Userref        int64            `json:"userref"`
	Status         string           `json:"status"`
	Reason         string           `json:"reason"`
	OpenTime       float64          `json:"opentm"`
	CloseTime      float64          `json:"closetm"`
	StartTime      float64          `json:"starttm"`
	ExpireTime     float64          `json:"expiretm"`
	Descr          OrderDescription `json:"descr"`
	Volume         decimal.Decimal  `json:"vol"`
	VolumeExecuted decimal.Decimal  `json:"vol_exec"`
	Cost           decimal.Decimal  `json:"cost"`
	Fee            decimal.Decimal  `json:"fee"`
	Price          decimal.Decimal  `json:"price"`
	StopPrice      decimal.Decimal  `json:"stopprice"`
	LimitPrice     decimal.Decimal  `json:"limitprice"`
	Misc           string           `json:"misc"`
	Oflags         string           `json:"oflags"`
	Trades         []string         `json:"trades"`
}

// OpenOrders is the AddOrder-side view of the book.
type OpenOrders struct {
	Open map[string]Order `json:"open"`
}

// ClosedOrders is a page of order history.
type ClosedOrders struct {
	Closed map[string]Order `json:"closed"`
	Count  int              `json:"count"`
}

// TradeInfo is one executed trade from the account's history.
type TradeInfo struct {
	OrderTxid string          `json:"ordertxid"`
	PosTxid   string          `json:"postxid"`
	Pair      string          `json:"pair"`
	Time      float64         `json:"time"`
	Type      string          `json:"type"`
	OrderType string          `json:"ordertype"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Fee       decimal.Decimal `json:"fee"`
	Volume    decimal.Decimal `json:"vol"`
	Margin    decimal.Decimal `json:"margin"`
	Misc      string          `json:"misc"`
}

// TradesHistory is a page of the account's trade history.
type TradesHistory struct {
	Trades map[string]TradeInfo `json:"trades"`
	Count  int                  `json:"count"`
}

// Position is one open margin position.
type Position struct {
	OrderTxid    string          `json:"ordertxid"`
	Pair         string          `json:"pair"`
	Time         float64         `json:"time"`
	Type         string          `json:"type"`
	OrderType    string          `json:"ordertype"`
	Cost         decimal.Decimal `json:"cost"`
	Fee          decimal.Decimal `json:"fee"`
	Volume       decimal.Decimal `json:"vol"`
	VolumeClosed decimal.Decimal `json:"vol_closed"`
	Margin       decimal.Decimal `json:"margin"`
	Value        decimal.Decimal `json:"value"`
	Net          decimal.Decimal `json:"net"`
	Terms        string          `json:"terms"`
	RolloverTime string          `json:"rollovertm"`
	Misc         string          `json:"misc"`
	Oflags       string          `json:"oflags"`
}

// LedgerEntry is one ledger movement.
type LedgerEntry struct {
	Refid   string          `json:"refid"`
	Time    float64         `json:"time"`
	Type    string          `json:"type"`
	Subtype string          `json:"subtype"`
	Aclass  string          `json:"aclass"`
	Asset   string          `json:"asset"`
	Amount  decimal.Decimal `json:"amount"`
	Fee     decimal.Decimal `json:"fee"`
	Balance decimal.Decimal `json:"balance"`
}

// Ledgers is a page of ledger entries keyed by ledger id.
type Ledgers struct {
	Ledger map[string]LedgerEntry `json:"ledger"`
	Count  int                    `json:"count"`
}

// FeeTier is the fee schedule entry for one pair at the account's
// current volume. NextFee and NextVolume are null at the top tier.
type FeeTier struct {
	Fee        decimal.Decimal  `json:"fee"`
	MinFee     decimal.Decimal  `json:"minfee"`
	MaxFee     decimal.Decimal  `json:"maxfee"`
	NextFee    *decimal.Decimal `json:"nextfee"`
	NextVolume *decimal.Decimal `json:"nextvolume"`
	TierVolume decimal.Decimal  `json:"tiervolume"`
}

// TradeVolume is the account's 30-day volume and fee schedule.
type TradeVolume struct {
	Currency  string             `json:"currency"`
	Volume    decimal.Decimal    `json:"volume"`
	Fees      map[string]FeeTier `json:"fees"`
	FeesMaker map[string]FeeTier `json:"fees_maker"`
}

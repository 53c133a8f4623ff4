package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ServerTime is the exchange's clock.
type ServerTime struct {
	UnixTime int64  `json:"unixtime"`
	Rfc1123  string `json:"rfc1123"`
}

// SystemStatus reports the trading mode: online, cancel_only,
// post_only or maintenance.
type SystemStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Asset describes one listed asset.
type Asset struct {
	Aclass          string `json:"aclass"`
	Altname         string `json:"altname"`
	Decimals        int    `json:"decimals"`
	DisplayDecimals int    `json:"display_decimals"`
}

// AssetPair describes one tradable pair.
type AssetPair struct {
	Altname           string          `json:"altname"`
	Wsname            string          `json:"wsname"`
	AclassBase        string          `json:"aclass_base"`
	Base              string          `json:"base"`
	AclassQuote       string          `json:"aclass_quote"`
	Quote             string          `json:"quote"`
	PairDecimals      int             `json:"pair_decimals"`
	LotDecimals       int             `json:"lot_decimals"`
	LotMultiplier     int             `json:"lot_multiplier"`
	LeverageBuy       []int           `json:"leverage_buy"`
	LeverageSell      []int           `json:"leverage_sell"`
	Fees              [][]json.Number `json:"fees"`
	FeesMaker         [][]json.Number `json:"fees_maker"`
	FeeVolumeCurrency string          `json:"fee_volume_currency"`
	MarginCall        int             `json:"margin_call"`
	MarginStop        int             `json:"margin_stop"`
	OrderMin          decimal.Decimal `json:"ordermin"`
}

// Ticker is today's price summary for one pair. Array positions follow
// the wire format: [price, whole lot volume, lot volume] for ask/bid,
// [today, last 24 hours] for the rolling fields.
type Ticker struct {
	Ask    [3]decimal.Decimal `json:"a"`
	Bid    [3]decimal.Decimal `json:"b"`
	Closed [2]decimal.Decimal `json:"c"`
	Volume [2]decimal.Decimal `json:"v"`
	VWAP   [2]decimal.Decimal `json:"p"`
	Trades [2]int64           `json:"t"`
	Low    [2]decimal.Decimal `json:"l"`
	High   [2]decimal.Decimal `json:"h"`
	Open   decimal.Decimal    `json:"o"`
}

// Candle is one OHLC frame. The wire format is a positional array:
// [time, open, high, low, close, vwap, volume, count].
type Candle struct {
	Time   int64
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	VWAP   decimal.Decimal
	Volume decimal.Decimal
	Count  int64
}

func (c *Candle) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 8 {
		return fmt.Errorf("candle row has %d fields, want 8", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Time); err != nil {
		return err
	}
	for i, dst := range []*decimal.Decimal{&c.Open, &c.High, &c.Low, &c.Close, &c.VWAP, &c.Volume} {
		if err := json.Unmarshal(raw[i+1], dst); err != nil {
			return err
		}
	}
	return json.Unmarshal(raw[7], &c.Count)
}

// OHLC is the candle series for one pair plus the id to use as
// "since" when polling for new frames.
type OHLC struct {
	Pair    string
	Candles []Candle
	Last    int64
}

// BookLevel is one side entry of the order book: [price, volume, time].
type BookLevel struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
	Time   int64
}

func (l *BookLevel) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 3 {
		return fmt.Errorf("book level has %d fields, want 3", len(raw))
	}
	if err := json.Unmarshal(raw[0], &l.Price); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &l.Volume); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &l.Time)
}

// Depth is the order book for one pair.
type Depth struct {
	Asks []BookLevel `json:"asks"`
	Bids []BookLevel `json:"bids"`
}

// Trade is one public trade:
// [price, volume, time, buy/sell, market/limit, misc].
type Trade struct {
	Price       decimal.Decimal
	Volume      decimal.Decimal
	Time        float64
	BuySell     string
	MarketLimit string
	Misc        string
}

func (t *Trade) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 6 {
		return fmt.Errorf("trade row has %d fields, want at least 6", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.Price); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &t.Volume); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[2], &t.Time); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[3], &t.BuySell); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[4], &t.MarketLimit); err != nil {
		return err
	}
	return json.Unmarshal(raw[5], &t.Misc)
}

// Trades is the recent-trade series for one pair. Last is an id string
// on the wire, unlike the OHLC one.
type Trades struct {
	Pair   string
	Trades []Trade
	Last   string
}

// Spread is one bid/ask sample: [time, bid, ask].
type Spread struct {
	Time int64
	Bid  decimal.Decimal
	Ask  decimal.Decimal
}

func (s *Spread) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 3 {
		return fmt.Errorf("spread row has %d fields, want 3", len(raw))
	}
	if err := json.Unmarshal(raw[0], &s.Time); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &s.Bid); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &s.Ask)
}

// Spreads is the recent-spread series for one pair.
type Spreads struct {
	Pair    string
	Spreads []Spread
	Last    int64
}

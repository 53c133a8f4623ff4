package types

import "encoding/json"

// AddOrderDescription echoes the order the exchange accepted.
type AddOrderDescription struct {
	Order string `json:"order"`
	Close string `json:"close"`
}

// AddOrderResult is the response to a new order. Txid is empty when
// the order was submitted in validate-only mode.
type AddOrderResult struct {
	Descr AddOrderDescription `json:"descr"`
	Txid  []string            `json:"txid"`
}

// CancelResult reports how many orders a cancel affected. Pending is
// left raw: the exchange sends it as a bool or as a list of txids
// depending on the endpoint.
type CancelResult struct {
	Count   int             `json:"count"`
	Pending json.RawMessage `json:"pending"`
}

// CancelAllAfterResult confirms a dead man's switch timer.
type CancelAllAfterResult struct {
	CurrentTime string `json:"currentTime"`
	TriggerTime string `json:"triggerTime"`
}

package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Params is the ordered parameter set for one endpoint call. Nil and
// empty values are omitted rather than sent, matching the exchange's
// treatment of absent options. Encoding is canonical: url.Values
// sorts keys, so the signed bytes and the sent bytes always agree.
type Params map[string]any

// values renders the parameters in the textual forms the exchange
// expects. Floats go through decimal so volumes and prices never pick
// up scientific notation; the signature covers these exact bytes.
func (p Params) values() url.Values {
	v := url.Values{}
	for key, raw := range p {
		if raw == nil {
			continue
		}
		var s string
		switch t := raw.(type) {
		case string:
			s = t
		case bool:
			if !t {
				continue
			}
			s = "true"
		case int:
			s = strconv.Itoa(t)
		case int64:
			s = strconv.FormatInt(t, 10)
		case float64:
			s = decimal.NewFromFloat(t).String()
		case decimal.Decimal:
			s = t.String()
		case fmt.Stringer:
			s = t.String()
		default:
			s = fmt.Sprint(t)
		}
		if s == "" {
			continue
		}
		v.Set(key, s)
	}
	return v
}

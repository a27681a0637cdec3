package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FlexString accepts a JSON string, number or null and preserves it as text.
// Finnhub reports price as a plain number for priced deals and as a string
// range like "15-17" before pricing; numberOfShares shows the same mix.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// IPOEvent is one raw entry from the Finnhub IPO calendar. Fields arrive
// untyped upstream; nothing here is persisted.
type IPOEvent struct {
	Symbol         string     `json:"symbol"`
	Name           string     `json:"name"`
	Date           string     `json:"date"`
	Exchange       string     `json:"exchange"`
	Price          FlexString `json:"price"`
	NumberOfShares FlexString `json:"numberOfShares"`
}

// IPOCalendarResponse is the envelope of the calendar endpoint. A missing
// ipoCalendar key decodes to a nil slice and is treated as an empty day.
type IPOCalendarResponse struct {
	IPOCalendar []IPOEvent `json:"ipoCalendar"`
}

// QualifyingIPO is a normalized record whose offer amount met the threshold.
// Constructed once per run by the filter and never mutated afterwards.
type QualifyingIPO struct {
	Symbol      string          `json:"symbol"`
	Company     string          `json:"company"`
	Date        string          `json:"date"`
	Price       decimal.Decimal `json:"price"`
	Shares      int64           `json:"shares"`
	OfferAmount decimal.Decimal `json:"offer_amount"`
	Exchange    string          `json:"exchange"`
}

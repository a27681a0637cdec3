package services

import (
	"strings"

	"github.com/fenilmodi00/ipo-monitor/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OfferAmountThreshold is the minimum offer amount (price x shares, USD) an
// IPO must reach to be notification-worthy. Inclusive: exactly 200M qualifies.
var OfferAmountThreshold = decimal.NewFromInt(200_000_000)

var two = decimal.NewFromInt(2)

// NormalizedDecimal is the outcome of normalizing a numeric field. Defaulted
// distinguishes "parsed fine" from "missing or malformed, zeroed" so logs can
// tell a legitimately small IPO apart from bad upstream data, even though both
// end up below the threshold.
type NormalizedDecimal struct {
	Value     decimal.Decimal
	Defaulted bool
}

// NormalizedShares is the share-count counterpart of NormalizedDecimal.
type NormalizedShares struct {
	Value     int64
	Defaulted bool
}

// FilterService implements the offer-amount screen over raw calendar events
type FilterService struct{}

// NewFilterService creates a new filter service instance
func NewFilterService() *FilterService {
	return &FilterService{}
}

// NormalizePrice turns a raw price field into a decimal. A string containing
// "-" is treated as a "low-high" range and resolved to the arithmetic
// midpoint; it must split into exactly two parseable parts, anything else
// (negative numbers included) is malformed and zeroes out. Missing or
// unparseable input likewise degrades to zero with Defaulted set; the
// normalizer never fails.
func (s *FilterService) NormalizePrice(raw string) NormalizedDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NormalizedDecimal{Value: decimal.Zero, Defaulted: true}
	}

	if strings.Contains(raw, "-") {
		parts := strings.Split(raw, "-")
		if len(parts) != 2 {
			return NormalizedDecimal{Value: decimal.Zero, Defaulted: true}
		}

		low, lowErr := decimal.NewFromString(strings.TrimSpace(parts[0]))
		high, highErr := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if lowErr != nil || highErr != nil {
			return NormalizedDecimal{Value: decimal.Zero, Defaulted: true}
		}

		return NormalizedDecimal{Value: low.Add(high).Div(two)}
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return NormalizedDecimal{Value: decimal.Zero, Defaulted: true}
	}

	return NormalizedDecimal{Value: value}
}

// NormalizeShares parses a share count, truncating any fractional part.
// Missing or unparseable input degrades to zero with Defaulted set.
func (s *FilterService) NormalizeShares(raw string) NormalizedShares {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NormalizedShares{Value: 0, Defaulted: true}
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return NormalizedShares{Value: 0, Defaulted: true}
	}

	return NormalizedShares{Value: value.IntPart()}
}

// FilterLargeIPOs keeps the events whose offer amount meets the threshold,
// preserving input order. Records zeroed by malformed input are logged and
// then dropped by the threshold check like any other small deal.
func (s *FilterService) FilterLargeIPOs(events []models.IPOEvent) []models.QualifyingIPO {
	qualifying := make([]models.QualifyingIPO, 0, len(events))

	for _, event := range events {
		price := s.NormalizePrice(event.Price.String())
		shares := s.NormalizeShares(event.NumberOfShares.String())

		if price.Defaulted && event.Price != "" {
			logrus.WithFields(logrus.Fields{
				"symbol": event.Symbol,
				"field":  "price",
				"raw":    event.Price.String(),
			}).Warn("Malformed numeric field normalized to zero")
		}
		if shares.Defaulted && event.NumberOfShares != "" {
			logrus.WithFields(logrus.Fields{
				"symbol": event.Symbol,
				"field":  "numberOfShares",
				"raw":    event.NumberOfShares.String(),
			}).Warn("Malformed numeric field normalized to zero")
		}

		offerAmount := price.Value.Mul(decimal.NewFromInt(shares.Value))
		if offerAmount.GreaterThanOrEqual(OfferAmountThreshold) {
			qualifying = append(qualifying, models.QualifyingIPO{
				Symbol:      event.Symbol,
				Company:     event.Name,
				Date:        event.Date,
				Price:       price.Value,
				Shares:      shares.Value,
				OfferAmount: offerAmount,
				Exchange:    event.Exchange,
			})
		}
	}

	return qualifying
}

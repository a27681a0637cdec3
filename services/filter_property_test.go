package services

import (
	"fmt"
	"testing"

	"github.com/fenilmodi00/ipo-monitor/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestNormalizePriceProperties(t *testing.T) {
	s := NewFilterService()
	properties := gopter.NewProperties(nil)

	properties.Property("For any input string, normalization is total and never yields a negative value", prop.ForAll(
		func(raw string) bool {
			got := s.NormalizePrice(raw)
			if got.Defaulted {
				return got.Value.IsZero()
			}
			return !got.Value.IsNegative()
		},
		gen.AnyString(),
	))

	properties.Property("For any low <= high range, the normalized price is the exact midpoint", prop.ForAll(
		func(low, high int64) bool {
			if low > high {
				low, high = high, low
			}
			got := s.NormalizePrice(fmt.Sprintf("%d-%d", low, high))
			if got.Defaulted {
				return false
			}
			want := decimal.NewFromInt(low).Add(decimal.NewFromInt(high)).Div(decimal.NewFromInt(2))
			return got.Value.Equal(want)
		},
		gen.Int64Range(0, 100000),
		gen.Int64Range(0, 100000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNormalizeSharesProperties(t *testing.T) {
	s := NewFilterService()
	properties := gopter.NewProperties(nil)

	properties.Property("For any input string, share normalization is total and defaulted means zero", prop.ForAll(
		func(raw string) bool {
			got := s.NormalizeShares(raw)
			return !got.Defaulted || got.Value == 0
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFilterThresholdProperties(t *testing.T) {
	s := NewFilterService()
	properties := gopter.NewProperties(nil)

	properties.Property("An event is kept iff normalized price times shares meets the threshold", prop.ForAll(
		func(priceCents int64, shares int64) bool {
			price := decimal.NewFromInt(priceCents).Div(decimal.NewFromInt(100))
			event := models.IPOEvent{
				Symbol:         "SYM",
				Name:           "Sym Corp",
				Price:          models.FlexString(price.String()),
				NumberOfShares: models.FlexString(fmt.Sprintf("%d", shares)),
			}

			kept := len(s.FilterLargeIPOs([]models.IPOEvent{event})) == 1
			wanted := price.Mul(decimal.NewFromInt(shares)).GreaterThanOrEqual(OfferAmountThreshold)
			return kept == wanted
		},
		gen.Int64Range(0, 100000),
		gen.Int64Range(0, 50_000_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

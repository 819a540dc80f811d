// Package checkout turns a cart snapshot plus customer input into a
// submittable order: it prices the draft, validates required fields, and
// hands the assembled payload to the order persistence collaborator.
package checkout

import (
	"os"

	"github.com/shopspring/decimal"

	"go-restaurant-ordering/models"
)

// Jurisdiction defaults, overridable through TAX_RATE and DELIVERY_FEE.
var (
	defaultTaxRate     = decimal.RequireFromString("0.08875")
	defaultDeliveryFee = decimal.RequireFromString("5.99")
)

// Config carries the pricing policy: the sales tax rate applied to the
// subtotal and the flat fee charged on delivery orders.
type Config struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

func DefaultConfig() Config {
	return Config{TaxRate: defaultTaxRate, DeliveryFee: defaultDeliveryFee}
}

// ConfigFromEnv reads TAX_RATE and DELIVERY_FEE, falling back to the
// defaults for unset or unparseable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil {
			cfg.TaxRate = rate
		}
	}
	if v := os.Getenv("DELIVERY_FEE"); v != "" {
		if fee, err := decimal.NewFromString(v); err == nil {
			cfg.DeliveryFee = fee
		}
	}
	return cfg
}

// Totals holds the priced draft. Values are exact as produced by Quote;
// call Round before persisting or displaying them.
type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Quote prices a cart snapshot: subtotal over (unit + add-ons) x quantity,
// the flat fee for delivery orders, tax on the subtotal, and the grand
// total. Deterministic and independent of line order.
func (c Config) Quote(items []models.CartItem, orderType string) Totals {
	subtotal := decimal.Zero
	for _, line := range items {
		unit := decimal.NewFromFloat(line.Price)
		for _, a := range line.Add_ons {
			unit = unit.Add(decimal.NewFromFloat(a.Price))
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	fee := decimal.Zero
	if orderType == models.OrderTypeDelivery {
		fee = c.DeliveryFee
	}
	tax := subtotal.Mul(c.TaxRate)

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee).Add(tax),
	}
}

// Round finalizes the draft to cents, half-up. The grand total is rounded
// from the exact component sum, not from the rounded components.
func (t Totals) Round() Totals {
	return Totals{
		Subtotal:    t.Subtotal.Round(2),
		Tax:         t.Tax.Round(2),
		DeliveryFee: t.DeliveryFee.Round(2),
		Total:       t.Total.Round(2),
	}
}

// QuoteResponse is the wire shape of a priced draft. Decimals marshal as
// JSON strings, so the quote endpoint converts to float64 to match the
// numeric totals carried on persisted orders.
type QuoteResponse struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// Response rounds the draft to cents and converts it for JSON.
func (t Totals) Response() QuoteResponse {
	r := t.Round()
	return QuoteResponse{
		Subtotal:    r.Subtotal.InexactFloat64(),
		Tax:         r.Tax.InexactFloat64(),
		DeliveryFee: r.DeliveryFee.InexactFloat64(),
		Total:       r.Total.InexactFloat64(),
	}
}

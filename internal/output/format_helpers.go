package output

import (
	"github.com/rpgo/portfolio-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with separators.
func FormatCurrency(amount decimal.Decimal) string { return money.FromDecimal(amount).Format() }

// FormatPercentage formats a percentage value (12 means 12%) with up to 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.Round(2).String() + "%" }

// FormatYears formats a duration in years with one decimal.
func FormatYears(years decimal.Decimal) string { return years.StringFixed(1) + " years" }

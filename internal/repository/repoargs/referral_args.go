package repoargs

import "github.com/shopspring/decimal"

type BindingCreate struct {
	InviteeID int64
	InviterID int64
	CodeUsed  string
}

type RuleCreate struct {
	Enabled     bool
	FirstRate   decimal.Decimal
	RenewalRate decimal.Decimal
	UpdatedBy   int64
}

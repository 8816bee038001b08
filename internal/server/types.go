package server

import (
	"expense-split/core/flight"
	"expense-split/core/types"
)

// HotelRequest is the body of POST /v1/hotel. It mirrors
// reimbursement.Input field for field.
type HotelRequest struct {
	StandardPerNight   float64        `json:"standard_per_night"`
	Nights             int            `json:"nights"`
	InputMode          string         `json:"input_mode"`
	TotalAmount        *float64       `json:"total_amount,omitempty"`
	PricePerNight      *float64       `json:"price_per_night,omitempty"`
	HasSpecialApproval bool           `json:"has_special_approval"`
	Currency           types.Currency `json:"currency,omitempty"`
}

// FlightSplitRequest is the body of POST /v1/flight/split. CompanyPercent is
// required when Preset is "custom" or empty; a named preset overrides it.
type FlightSplitRequest struct {
	Total          *float64       `json:"total"`
	CompanyPercent *float64       `json:"company_percent,omitempty"`
	Preset         flight.Preset  `json:"preset,omitempty"`
	Currency       types.Currency `json:"currency,omitempty"`
}

// FlightUpgradeRequest is the body of POST /v1/flight/upgrade. At least one
// amount is required; the other counts as zero. A missing
// UpgradeCompanyPercent falls back to the configured default.
type FlightUpgradeRequest struct {
	EconomyAmount         *float64       `json:"economy_amount,omitempty"`
	UpgradeAmount         *float64       `json:"upgrade_amount,omitempty"`
	UpgradeCompanyPercent *float64       `json:"upgrade_company_percent,omitempty"`
	Currency              types.Currency `json:"currency,omitempty"`
}

// ErrorBody is the error envelope every non-2xx response uses.
type ErrorBody struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail describes one failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

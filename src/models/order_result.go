package models

// OrderPlacedResult is the decoded payload of a live order submission.
type OrderPlacedResult struct {
	Order             LiveOrderRecord   `json:"order"`
	Warnings          []Warning         `json:"warnings"`
	BuyingPowerEffect BuyingPowerEffect `json:"buying-power-effect"`
	FeeCalculation    FeeCalculation    `json:"fee-calculation"`
}

// DryRunResult is the decoded payload of an order preview submission.
type DryRunResult struct {
	Order             DryRunRecord      `json:"order"`
	Warnings          []Warning         `json:"warnings"`
	BuyingPowerEffect BuyingPowerEffect `json:"buying-power-effect"`
	FeeCalculation    FeeCalculation    `json:"fee-calculation"`
}

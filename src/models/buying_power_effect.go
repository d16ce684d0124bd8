package models

// BuyingPowerEffect is the net collateral impact of an order. Every amount is
// paired with its own PriceEffect; the pairing is the broker's sign
// convention and is never inferred from the number itself.
type BuyingPowerEffect struct {
	ChangeInMarginRequirement            BigDecimal  `json:"change-in-margin-requirement"`
	ChangeInMarginRequirementEffect      PriceEffect `json:"change-in-margin-requirement-effect"`
	ChangeInBuyingPower                  BigDecimal  `json:"change-in-buying-power"`
	ChangeInBuyingPowerEffect            PriceEffect `json:"change-in-buying-power-effect"`
	CurrentBuyingPower                   BigDecimal  `json:"current-buying-power"`
	CurrentBuyingPowerEffect             PriceEffect `json:"current-buying-power-effect"`
	NewBuyingPower                       BigDecimal  `json:"new-buying-power"`
	NewBuyingPowerEffect                 PriceEffect `json:"new-buying-power-effect"`
	IsolatedOrderMarginRequirement       BigDecimal  `json:"isolated-order-margin-requirement"`
	IsolatedOrderMarginRequirementEffect PriceEffect `json:"isolated-order-margin-requirement-effect"`
	IsSpread                             bool        `json:"is-spread"`
	Impact                               BigDecimal  `json:"impact"`
	Effect                               PriceEffect `json:"effect"`
}

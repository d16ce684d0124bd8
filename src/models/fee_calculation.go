package models

// FeeCalculation breaks down the fees the broker expects to charge for an
// order.
type FeeCalculation struct {
	RegulatoryFees                   BigDecimal  `json:"regulatory-fees"`
	RegulatoryFeesEffect             PriceEffect `json:"regulatory-fees-effect"`
	ClearingFees                     BigDecimal  `json:"clearing-fees"`
	ClearingFeesEffect               PriceEffect `json:"clearing-fees-effect"`
	Commission                       BigDecimal  `json:"commission"`
	CommissionEffect                 PriceEffect `json:"commission-effect"`
	ProprietaryIndexOptionFees       BigDecimal  `json:"proprietary-index-option-fees"`
	ProprietaryIndexOptionFeesEffect PriceEffect `json:"proprietary-index-option-fees-effect"`
	TotalFees                        BigDecimal  `json:"total-fees"`
	TotalFeesEffect                  PriceEffect `json:"total-fees-effect"`
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPlacedPayload = `{
	"order": {
		"id": 129359,
		"account-number": "5WU44237",
		"time-in-force": "Day",
		"order-type": "Limit",
		"size": 100,
		"underlying-symbol": "AAPL",
		"underlying-instrument-type": "Equity",
		"price": "181.01",
		"price-effect": "Debit",
		"status": "Received",
		"cancellable": true,
		"editable": true,
		"edited": false,
		"received-at": "2024-02-11T21:59:57.143+00:00",
		"updated-at": 1234,
		"global-request-id": "153cc8811e19d5aba6c9bfa083251e56",
		"legs": [
			{
				"instrument-type": "Equity",
				"symbol": "AAPL",
				"quantity": 100,
				"remaining-quantity": 100,
				"action": "Buy to Open",
				"fills": []
			}
		]
	},
	"warnings": [
		{
			"code": "tif_next_valid_sesssion",
			"message": "Your order will begin working during next valid session."
		}
	],
	"buying-power-effect": {
		"change-in-margin-requirement": "9050.5",
		"change-in-margin-requirement-effect": "Debit",
		"change-in-buying-power": "9050.58",
		"change-in-buying-power-effect": "Debit",
		"current-buying-power": "10056.31",
		"current-buying-power-effect": "Credit",
		"new-buying-power": "1005.73",
		"new-buying-power-effect": "Credit",
		"isolated-order-margin-requirement": "9050.5",
		"isolated-order-margin-requirement-effect": "Debit",
		"is-spread": false,
		"impact": "9050.58",
		"effect": "Debit"
	},
	"fee-calculation": {
		"regulatory-fees": "0.0",
		"regulatory-fees-effect": "None",
		"clearing-fees": "0.08",
		"clearing-fees-effect": "Debit",
		"commission": "0.0",
		"commission-effect": "None",
		"proprietary-index-option-fees": "0.0",
		"proprietary-index-option-fees-effect": "None",
		"total-fees": "0.08",
		"total-fees-effect": "Debit"
	}
}`

func TestOrderPlacedResultDecoding(t *testing.T) {
	var result OrderPlacedResult
	require.NoError(t, json.Unmarshal([]byte(orderPlacedPayload), &result))

	t.Run("order record", func(t *testing.T) {
		order := result.Order

		assert.Equal(t, uint64(129359), order.ID)
		assert.Equal(t, AccountNumber("5WU44237"), order.AccountNumber)
		assert.Equal(t, TimeInForceDay, order.TimeInForce)
		assert.Equal(t, OrderTypeLimit, order.OrderType)
		assert.Equal(t, uint64(100), order.Size)
		assert.Equal(t, NewSymbol("AAPL"), order.UnderlyingSymbol)
		assert.Equal(t, InstrumentTypeEquity, order.UnderlyingInstrumentType)
		assert.Equal(t, OrderStatusReceived, order.Status)
		assert.False(t, order.Status.IsTerminal())
		assert.True(t, order.Cancellable)
		assert.Equal(t, "153cc8811e19d5aba6c9bfa083251e56", order.GlobalRequestID)

		require.Len(t, order.Legs, 1)
		leg := order.Legs[0]
		assert.Equal(t, ActionBuyToOpen, leg.Action)
		assert.True(t, leg.Quantity.Equal(decimal.RequireFromString("100")))
		assert.True(t, leg.RemainingQuantity.Equal(decimal.RequireFromString("100")))
		assert.Empty(t, leg.Fills)
	})

	t.Run("price keeps its exact wire form", func(t *testing.T) {
		out, err := json.Marshal(result.Order.Price)
		require.NoError(t, err)

		assert.Equal(t, `"181.01"`, string(out))
	})

	t.Run("warnings", func(t *testing.T) {
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "tif_next_valid_sesssion", result.Warnings[0].Code)
	})

	t.Run("buying power effect", func(t *testing.T) {
		bpe := result.BuyingPowerEffect

		assert.False(t, bpe.IsSpread)
		assert.Equal(t, "9050.5", bpe.ChangeInMarginRequirement.WireString())
		assert.Equal(t, PriceEffectDebit, bpe.ChangeInMarginRequirementEffect)
		assert.Equal(t, "9050.58", bpe.Impact.WireString())
		assert.Equal(t, PriceEffectDebit, bpe.Effect)
		assert.Equal(t, "10056.31", bpe.CurrentBuyingPower.WireString())
		assert.Equal(t, PriceEffectCredit, bpe.CurrentBuyingPowerEffect)
	})

	t.Run("fee calculation", func(t *testing.T) {
		fees := result.FeeCalculation

		assert.Equal(t, "0.0", fees.RegulatoryFees.WireString())
		assert.Equal(t, PriceEffectNone, fees.RegulatoryFeesEffect)
		assert.Equal(t, "0.08", fees.TotalFees.WireString())
		assert.Equal(t, PriceEffectDebit, fees.TotalFeesEffect)
	})
}

func TestDryRunResultDecoding(t *testing.T) {
	payload := `{
		"order": {
			"account-number": "5WU44237",
			"time-in-force": "Day",
			"order-type": "Limit",
			"size": 100,
			"underlying-symbol": "AAPL",
			"price": "181.01",
			"price-effect": "Debit",
			"status": "Contingent",
			"cancellable": true,
			"editable": true,
			"edited": false,
			"legs": [
				{
					"instrument-type": "Equity",
					"symbol": "AAPL",
					"quantity": 100,
					"action": "Buy to Open"
				}
			]
		},
		"warnings": [],
		"buying-power-effect": {
			"change-in-buying-power": "18101.00",
			"change-in-buying-power-effect": "Debit",
			"is-spread": false
		},
		"fee-calculation": {
			"total-fees": "0.08",
			"total-fees-effect": "Debit"
		}
	}`

	var result DryRunResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	assert.Equal(t, OrderStatusContingent, result.Order.Status)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "18101.00", result.BuyingPowerEffect.ChangeInBuyingPower.WireString())

	require.Len(t, result.Order.Legs, 1)
	assert.Equal(t, InstrumentTypeEquity, result.Order.Legs[0].InstrumentType)
}

func TestFullOrderDecoding(t *testing.T) {
	payload := `{
		"id": "129359",
		"account-number": "5WU44237",
		"time-in-force": "GTC",
		"order-type": "Stop Limit",
		"size": "100.0",
		"underlying-symbol": "AAPL",
		"price": "181.01",
		"price-effect": "Debit",
		"status": "Live",
		"cancellable": true,
		"editable": false,
		"edited": false,
		"legs": []
	}`

	var order FullOrder
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	assert.Equal(t, OrderID("129359"), order.ID)
	assert.Equal(t, TimeInForceGTC, order.TimeInForce)
	assert.Equal(t, OrderTypeStopLimit, order.OrderType)
	assert.Equal(t, "100.0", order.Size.WireString())
	assert.Equal(t, OrderStatusLive, order.Status)
}

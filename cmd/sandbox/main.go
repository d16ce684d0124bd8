package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/papertrade-labs/tastyworks-go/src/client"
	"github.com/papertrade-labs/tastyworks-go/src/models"
	"github.com/papertrade-labs/tastyworks-go/src/utils"
)

func main() {
	log.SetLevel(log.TraceLevel)

	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Warnf("failed to load environment: %v", err)
	}

	username, err := utils.GetEnv("TASTY_USERNAME")
	if err != nil {
		log.Fatalf("$TASTY_USERNAME not set: %v", err)
	}

	password, err := utils.GetEnv("TASTY_PASSWORD")
	if err != nil {
		log.Fatalf("$TASTY_PASSWORD not set: %v", err)
	}

	accountNumber, err := utils.GetEnv("TASTY_ACCOUNT_NUMBER")
	if err != nil {
		log.Fatalf("$TASTY_ACCOUNT_NUMBER not set: %v", err)
	}

	ctx := context.Background()

	c, err := client.Login(ctx, username, password, true)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	log.Infof("logged in as %s", username)

	price, err := models.NewBigDecimalFromString("180.00")
	if err != nil {
		log.Fatalf("invalid price: %v", err)
	}

	quantity, err := models.NewFloatDecimalFromString("1")
	if err != nil {
		log.Fatalf("invalid quantity: %v", err)
	}

	order, err := models.NewOrderBuilder().
		TimeInForce(models.TimeInForceDay).
		OrderType(models.OrderTypeLimit).
		Price(price).
		PriceEffect(models.PriceEffectDebit).
		AddLeg(models.NewOrderLeg(models.InstrumentTypeEquity, models.NewSymbol("AAPL"), quantity, models.ActionBuyToOpen)).
		Build()
	if err != nil {
		log.Fatalf("failed to build order: %v", err)
	}

	path := fmt.Sprintf("/accounts/%s/orders/dry-run", accountNumber)

	result, err := client.Post[models.DryRunResult](ctx, c, path, order)
	if err != nil {
		log.Fatalf("dry run failed: %v", err)
	}

	log.WithFields(log.Fields{
		"status":                 result.Order.Status,
		"change-in-buying-power": result.BuyingPowerEffect.ChangeInBuyingPower.WireString(),
		"total-fees":             result.FeeCalculation.TotalFees.WireString(),
		"warnings":               len(result.Warnings),
	}).Info("dry run accepted")

	for _, warning := range result.Warnings {
		log.Warnf("%s: %s", warning.Code, warning.Message)
	}
}

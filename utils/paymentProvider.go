package utils

import (
	"campapi/config"
	"fmt"
	"math"

	"github.com/go-resty/resty/v2"
)

// paymentIntentResponse is the slice of the provider response we use
type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent requests a payment intent from the provider and returns
// the client secret. The provider wants the amount in minor currency units,
// so the major-unit price is multiplied by 100.
func CreatePaymentIntent(price float64) (string, error) {
	if config.AppConfig.PaymentSecretKey == "" || config.AppConfig.PaymentSecretKey == "defaultSecret" {
		return "", fmt.Errorf("payment provider secret key is not configured")
	}

	amount := int64(math.Round(price * 100))

	form := map[string]string{
		"amount":   fmt.Sprintf("%d", amount),
		"currency": config.AppConfig.PaymentCurrency,
	}
	form["automatic_payment_methods[enabled]"] = "true"

	client := resty.New()
	var intent paymentIntentResponse

	resp, err := client.R().
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBasicAuth(config.AppConfig.PaymentSecretKey, "").
		SetFormData(form).
		SetResult(&intent).
		SetError(&intent).
		Post(config.AppConfig.PaymentApiURL + "/payment_intents")
	if err != nil {
		return "", fmt.Errorf("failed to reach payment provider: %v", err)
	}

	if resp.IsError() {
		if intent.Error.Message != "" {
			return "", fmt.Errorf("payment provider error: %s", intent.Error.Message)
		}
		return "", fmt.Errorf("payment provider error: %s", resp.Status())
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment provider returned no client secret")
	}

	return intent.ClientSecret, nil
}

// controllers/payment.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// PaymentController creates Stripe payment intents
type PaymentController struct {
	Stripe *client.API
}

// NewPaymentController creates a new PaymentController with its own Stripe client
func NewPaymentController(secretKey string) *PaymentController {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &PaymentController{
		Stripe: sc,
	}
}

// minorUnits converts a dollar amount to integer cents, truncating the
// fractional dollars first.
func minorUnits(total float64) int64 {
	return int64(total) * 100
}

// CreatePaymentIntent creates a card payment intent in USD for the submitted
// total amount and returns its client secret. Completion of the payment is
// left to the client and Stripe.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var booking struct {
		TotalAmount float64 `json:"totalAmount"`
	}
	err := json.NewDecoder(r.Body).Decode(&booking)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(booking.TotalAmount)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = r.Context()

	paymentIntent, err := pc.Stripe.PaymentIntents.New(params)
	if err != nil {
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": paymentIntent.ClientSecret})
}

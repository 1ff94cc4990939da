// controllers/shipping.go
package controllers

import (
	"context"
	"encoding/json"
	"go-emart/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShippingController handles shipment/order records. Documents are stored
// as-is and associated with a user only by their email field.
type ShippingController struct {
	Collection   *mongo.Collection
	EmailService *utils.EmailService
}

// NewShippingController creates a new ShippingController
func NewShippingController(db *mongo.Database, emailService *utils.EmailService) *ShippingController {
	return &ShippingController{
		Collection:   db.Collection("shipping"),
		EmailService: emailService,
	}
}

// CreateShipment records a shipping/payment submission
func (sc *ShippingController) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	err := json.NewDecoder(r.Body).Decode(&doc)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := sc.Collection.InsertOne(ctx, doc)
	if err != nil {
		http.Error(w, "Error creating shipment", http.StatusInternalServerError)
		return
	}

	if email, ok := doc["email"].(string); ok && email != "" && sc.EmailService != nil {
		go func(email string) {
			if err := sc.EmailService.SendOrderReceivedEmail(email); err != nil {
				log.Warn().Err(err).Str("email", email).Msg("Failed to send order confirmation email")
			}
		}(email)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetOrders retrieves all shipment/order records
func (sc *ShippingController) GetOrders(w http.ResponseWriter, r *http.Request) {
	sc.findOrders(w, bson.M{})
}

// GetOrdersByEmail retrieves the orders submitted under the given email
func (sc *ShippingController) GetOrdersByEmail(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	sc.findOrders(w, bson.M{"email": params["email"]})
}

func (sc *ShippingController) findOrders(w http.ResponseWriter, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := sc.Collection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []bson.M{}
	for cursor.Next(ctx) {
		var order bson.M
		cursor.Decode(&order)
		orders = append(orders, order)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

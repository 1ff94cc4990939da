// routes/routes.go
package routes

import (
	"go-emart/controllers"
	"go-emart/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, shippingController *controllers.ShippingController, paymentController *controllers.PaymentController) {
	// Health check
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("server running"))
	}).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{id}", productController.AddReview).Methods("PUT")
	router.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")

	// Shipment/order routes
	router.HandleFunc("/shipping", shippingController.CreateShipment).Methods("POST")
	router.HandleFunc("/order", shippingController.GetOrders).Methods("GET")
	router.HandleFunc("/order/{email}", shippingController.GetOrdersByEmail).Methods("GET")

	// User routes
	router.HandleFunc("/user", userController.CreateUser).Methods("POST")
	router.HandleFunc("/user", userController.GetUsers).Methods("GET")
	router.HandleFunc("/user/{id}", userController.DeleteUser).Methods("DELETE")
	router.HandleFunc("/jwt", userController.IssueToken).Methods("GET")
	router.HandleFunc("/users/admin/{email}", userController.IsAdmin).Methods("GET")
	router.HandleFunc("/user/vendor/{email}", userController.IsVendor).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/user/admin/{id}", userController.MakeAdmin).Methods("PUT")
	protected.HandleFunc("/user/vendor/{id}", userController.MakeVendor).Methods("PUT")
	protected.HandleFunc("/create-payment-intent", paymentController.CreatePaymentIntent).Methods("POST")
}

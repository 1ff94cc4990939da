package controllers

import (
	"context"
	"encoding/json"
	"go-emart/models"
	"go-emart/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests, including token issuance
type UserController struct {
	Collection   *mongo.Collection
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController with EmailService
func NewUserController(db *mongo.Database, emailService *utils.EmailService) *UserController {
	return &UserController{
		Collection:   db.Collection("users"),
		EmailService: emailService,
	}
}

// CreateUser handles user registration. A password, when supplied, is
// bcrypt-hashed before the document is stored. Email uniqueness is not
// checked.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !user.Role.Valid() || !user.Title.Valid() {
		http.Error(w, "Invalid role or title", http.StatusBadRequest)
		return
	}

	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Error hashing password", http.StatusInternalServerError)
			return
		}
		user.Password = string(hashedPassword)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := uc.Collection.InsertOne(ctx, user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	if uc.EmailService != nil && user.Email != "" {
		go func(email string) {
			if err := uc.EmailService.SendWelcomeEmail(email); err != nil {
				log.Warn().Err(err).Str("email", email).Msg("Failed to send welcome email")
			}
		}(user.Email)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetUsers retrieves all users
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := uc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var user models.User
		cursor.Decode(&user)
		user.Password = ""
		users = append(users, user)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// DeleteUser handles deleting a user by ID
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// IssueToken looks up the user by the email query parameter and, when found,
// returns a signed access token. An unknown email yields 403 with an empty
// token.
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"accessToken": ""})
		return
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
}

// IsAdmin reports whether the user with the given email has the admin role.
// A missing user simply reads as not admin.
func (uc *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	email := params["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	isAdmin := err == nil && user.Role == models.RoleAdmin

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"isAdmin": isAdmin})
}

// MakeAdmin sets the admin role on the user with the given ID, inserting the
// document when it does not exist
func (uc *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	uc.setField(w, r, bson.M{"role": models.RoleAdmin})
}

// IsVendor reports whether the user with the given email carries the vendor
// title
func (uc *UserController) IsVendor(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	email := params["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := uc.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	isVendor := err == nil && user.Title == models.TitleVendor

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"isVendor": isVendor})
}

// MakeVendor sets the vendor title on the user with the given ID, inserting
// the document when it does not exist
func (uc *UserController) MakeVendor(w http.ResponseWriter, r *http.Request) {
	uc.setField(w, r, bson.M{"title": models.TitleVendor})
}

// setField upserts the given fields on the user identified by the id path
// parameter and returns the raw update result
func (uc *UserController) setField(w http.ResponseWriter, r *http.Request, fields bson.M) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := uc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
	if err != nil {
		http.Error(w, "Error updating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func productRouter(pc *ProductController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/products", pc.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", pc.GetProductByID).Methods("GET")
	router.HandleFunc("/products", pc.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{id}", pc.AddReview).Methods("PUT")
	router.HandleFunc("/products/{id}", pc.DeleteProduct).Methods("DELETE")
	return router
}

func TestCreateProduct(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("arbitrary document is accepted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		pc := &ProductController{Collection: mt.Coll}
		body := `{"name":"Mug","price":9.99,"tags":["kitchen"],"meta":{"color":"blue"}}`
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			mt.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestGetProducts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists documents", func(mt *mtest.T) {
		first := bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Mug"}}
		second := bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Lamp"}}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "e-mart.products", mtest.FirstBatch, first),
			mtest.CreateCursorResponse(0, "e-mart.products", mtest.NextBatch, second),
		)

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var products []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
			mt.Fatalf("invalid response body: %v", err)
		}
		if len(products) != 2 {
			mt.Fatalf("expected 2 products, got %d", len(products))
		}
	})

	mt.Run("page request sends skip and limit", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "e-mart.products", mtest.FirstBatch))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products?page=2&size=5", nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %v", evt)
		}
		skip, err := evt.Command.LookupErr("skip")
		if err != nil {
			mt.Fatalf("find command carries no skip: %v", evt.Command)
		}
		if skip.AsInt64() != 10 {
			mt.Fatalf("expected skip 10, got %d", skip.AsInt64())
		}
		limit, err := evt.Command.LookupErr("limit")
		if err != nil {
			mt.Fatalf("find command carries no limit: %v", evt.Command)
		}
		if limit.AsInt64() != 5 {
			mt.Fatalf("expected limit 5, got %d", limit.AsInt64())
		}
	})

	mt.Run("unpaged request sends no skip", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "e-mart.products", mtest.FirstBatch))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %v", evt)
		}
		if _, err := evt.Command.LookupErr("skip"); err == nil {
			mt.Fatalf("expected no skip on an unpaged find: %v", evt.Command)
		}
	})

	mt.Run("empty collection yields an empty array", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "e-mart.products", mtest.FirstBatch))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products?page=0&size=10", nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if strings.TrimSpace(rec.Body.String()) != "[]" {
			mt.Fatalf("expected an empty JSON array, got %s", rec.Body.String())
		}
	})
}

func TestAddReview(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("review push result is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		pc := &ProductController{Collection: mt.Coll}
		body := `{"rating":5,"comment":"great"}`
		req := httptest.NewRequest(http.MethodPut, "/products/"+primitive.NewObjectID().Hex(), strings.NewReader(body))
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	mt.Run("zero-match update still succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodPut, "/products/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"rating":1}`))
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var result map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			mt.Fatalf("invalid response body: %v", err)
		}
		if result["MatchedCount"] != float64(0) {
			mt.Fatalf("expected MatchedCount 0, got %v", result["MatchedCount"])
		}
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodPut, "/products/nope", strings.NewReader(`{"rating":1}`))
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			mt.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete of an absent product is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodDelete, "/products/"+primitive.NewObjectID().Hex(), nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var result map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			mt.Fatalf("invalid response body: %v", err)
		}
		if result["DeletedCount"] != float64(0) {
			mt.Fatalf("expected DeletedCount 0, got %v", result["DeletedCount"])
		}
	})
}

func TestGetProductByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "e-mart.products", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Mug"},
		}))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products/"+id.Hex(), nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			mt.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var product map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
			mt.Fatalf("invalid response body: %v", err)
		}
		if product["name"] != "Mug" {
			mt.Fatalf("expected the submitted fields back, got %v", product)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "e-mart.products", mtest.FirstBatch))

		pc := &ProductController{Collection: mt.Coll}
		req := httptest.NewRequest(http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), nil)
		rec := httptest.NewRecorder()
		productRouter(pc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			mt.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	appCatalog "github.com/ftorres/marketplace-insights/internal/application/catalog"
	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductHandlers handles HTTP requests for product operations
type ProductHandlers struct {
	catalogService *appCatalog.Service
}

// NewProductHandlers creates new product HTTP handlers
func NewProductHandlers(catalogService *appCatalog.Service) *ProductHandlers {
	return &ProductHandlers{catalogService: catalogService}
}

type ProductPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Marketplace string   `json:"marketplace"`
	ExternalID  string   `json:"external_id"`
	URL         string   `json:"url"`
}

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Marketplace string   `json:"marketplace"`
	ExternalID  string   `json:"external_id,omitempty"`
	URL         string   `json:"url,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Marketplace: product.Marketplace,
		ExternalID:  product.ExternalID,
		URL:         product.URL,
		CreatedAt:   product.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   product.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *ProductHandlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("[CreateProduct] Invalid request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(),
		payload.Name, payload.Description, payload.Category, payload.Price,
		payload.Marketplace, payload.ExternalID, payload.URL)
	if err != nil {
		log.Printf("[CreateProduct] Failed: %v", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(product))
}

func (h *ProductHandlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ProductFilter{
		Marketplace: r.URL.Query().Get("marketplace"),
		Category:    r.URL.Query().Get("category"),
		Limit:       100,
		Offset:      0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = o
		}
	}

	log.Printf("[ListProducts] Fetching products: marketplace=%q, category=%q, limit=%d, offset=%d",
		filter.Marketplace, filter.Category, filter.Limit, filter.Offset)
	products, err := h.catalogService.ListProducts(r.Context(), filter)
	if err != nil {
		log.Printf("[ListProducts] Failed: %v", err)
		writeError(w, err)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

func (h *ProductHandlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		log.Printf("[GetProduct] Failed: id=%s, error=%v", id, err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

func (h *ProductHandlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	// Pointer fields distinguish "absent" from "set to zero value"
	var payload struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price"`
		Marketplace *string  `json:"marketplace"`
		ExternalID  *string  `json:"external_id"`
		URL         *string  `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), id, catalog.ProductUpdate{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		Price:       payload.Price,
		Marketplace: payload.Marketplace,
		ExternalID:  payload.ExternalID,
		URL:         payload.URL,
	})
	if err != nil {
		log.Printf("[UpdateProduct] Failed: id=%s, error=%v", id, err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

func (h *ProductHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		log.Printf("[DeleteProduct] Failed: id=%s, error=%v", id, err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true})
}

// productIDFromPath extracts the UUID from /api/products/{id}
func productIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.URL.Path[len("/api/products/"):]
	if idStr == "" {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"izuran/internal/cart"
	"izuran/internal/models"
	"izuran/internal/services"
)

const sessionName = "izuran_session"

// CartHandler handles shopping cart requests. Each visitor's cart is
// identified by an anonymous cart id carried in the session cookie; the
// cart state itself lives in the cart store.
type CartHandler struct {
	shopService *services.ShopService
	cartStore   cart.Store
	sessions    sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(shopService *services.ShopService, cartStore cart.Store, sessionStore sessions.Store) *CartHandler {
	return &CartHandler{
		shopService: shopService,
		cartStore:   cartStore,
		sessions:    sessionStore,
	}
}

// collectNotifier gathers the notifications raised by a request's cart
// mutations so they can be returned as transient toasts
type collectNotifier struct {
	messages []string
}

func (n *collectNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

// cartResponse is the JSON shape returned by every cart endpoint
type cartResponse struct {
	Items         []models.CartItem `json:"items"`
	Count         int               `json:"count"`
	Total         float64           `json:"total"`
	Currency      string            `json:"currency"`
	Notifications []string          `json:"notifications,omitempty"`
}

// engine loads (or creates) the visitor's cart engine for this request
func (h *CartHandler) engine(w http.ResponseWriter, r *http.Request) (*cart.Engine, *collectNotifier, error) {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie falls back to a fresh session
		session, err = h.sessions.New(r, sessionName)
		if err != nil {
			return nil, nil, err
		}
	}

	cartID, ok := session.Values["cart_id"].(string)
	if !ok || cartID == "" {
		cartID = uuid.NewString()
		session.Values["cart_id"] = cartID
		if err := session.Save(r, w); err != nil {
			return nil, nil, err
		}
	}

	notifier := &collectNotifier{}
	engine := cart.NewEngine(h.cartStore, cart.StorageKey+":"+cartID, notifier)
	return engine, notifier, nil
}

// respond writes the cart state plus any notifications raised
func (h *CartHandler) respond(w http.ResponseWriter, state cart.State, notifier *collectNotifier) {
	items := state.Items
	if items == nil {
		items = []models.CartItem{}
	}

	respondJSON(w, http.StatusOK, cartResponse{
		Items:         items,
		Count:         state.Count(),
		Total:         state.Total(),
		Currency:      state.Currency(),
		Notifications: notifier.messages,
	})
}

// ViewCart returns the current cart contents
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	h.respond(w, engine.State(), notifier)
}

// AddItem adds a product to the cart, incrementing its quantity when it
// is already present
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.shopService.GetProduct(req.ProductID)
	if err != nil {
		respondError(w, statusForError(err), "Product not found")
		return
	}

	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	state := engine.Dispatch(cart.Add{Product: *product})
	h.respond(w, state, notifier)
}

// UpdateItem sets an item's quantity. Quantities below 1 are silently
// ignored and the unchanged cart is returned; removal is the only way to
// eliminate an item.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	state := engine.Dispatch(cart.UpdateQuantity{ProductID: productID, Quantity: req.Quantity})
	h.respond(w, state, notifier)
}

// RemoveItem deletes an item from the cart; removing an absent item is
// a no-op
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	state := engine.Dispatch(cart.Remove{ProductID: productID})
	h.respond(w, state, notifier)
}

// ReorderItems moves one cart item to another item's position,
// preserving the relative order of the rest
func (h *CartHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveID string `json:"active_id"`
		OverID   string `json:"over_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	state := engine.Dispatch(cart.Reorder{ActiveID: req.ActiveID, OverID: req.OverID})
	h.respond(w, state, notifier)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	engine, notifier, err := h.engine(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	state := engine.Dispatch(cart.Clear{})
	h.respond(w, state, notifier)
}

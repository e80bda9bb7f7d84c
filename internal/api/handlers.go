/*
Package api
File: handlers.go
Description:
    HTTP handlers for the REST API. These decode incoming JSON requests,
    call into the simulation (internal/game) and map domain failures to
    HTTP statuses. All state access goes through Game methods, which
    serialize against the tick internally.
*/

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/everforgeworks/pet-cafe-server/internal/game"
)

// Request DTOs. These structs define exactly what the client sends.

type BuildRequest struct {
	Coord  string `json:"coord"` // "x,y"
	ItemID string `json:"item_id"`
	Kind   string `json:"kind"` // "furniture" or "equipment"
}

type StartOrderRequest struct {
	OrderID string `json:"order_id"`
	Chair   string `json:"chair"` // "x,y"
}

type CollectRequest struct {
	Equipment string `json:"equipment"` // "x,y"
}

type BuyBundleRequest struct {
	BundleID string `json:"bundle_id"`
}

type CollectResponse struct {
	Earned int `json:"earned"`
}

type Handler struct {
	Game *game.Game
	QR   QRGenerator
}

func NewHandler(g *game.Game, qr QRGenerator) *Handler {
	return &Handler{Game: g, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/state", h.getState).Methods("GET")
	r.HandleFunc("/api/catalog", h.getCatalog).Methods("GET")
	r.HandleFunc("/api/build", h.build).Methods("POST")
	r.HandleFunc("/api/orders/start", h.startOrder).Methods("POST")
	r.HandleFunc("/api/orders/collect", h.collect).Methods("POST")
	r.HandleFunc("/api/boosts/rush-hour", h.rushHour).Methods("POST")
	r.HandleFunc("/api/boosts/clean-cafe", h.cleanCafe).Methods("POST")
	r.HandleFunc("/api/shop/buy", h.buyBundle).Methods("POST")
	r.HandleFunc("/api/shop/{bundleId}/qr", h.bundleQR).Methods("GET")
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	raw, err := h.Game.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Game.Catalog())
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	coord, err := game.ParseCoord(req.Coord)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Game.Place(coord, req.ItemID, game.ItemKind(req.Kind)); err != nil {
		writeDomainError(w, err)
		return
	}
	h.writeState(w)
}

func (h *Handler) startOrder(w http.ResponseWriter, r *http.Request) {
	var req StartOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	chair, err := game.ParseCoord(req.Chair)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Game.StartOrder(req.OrderID, chair); err != nil {
		writeDomainError(w, err)
		return
	}
	h.writeState(w)
}

func (h *Handler) collect(w http.ResponseWriter, r *http.Request) {
	var req CollectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	equipment, err := game.ParseCoord(req.Equipment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	earned, err := h.Game.CollectEarnings(equipment)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CollectResponse{Earned: earned})
}

func (h *Handler) rushHour(w http.ResponseWriter, r *http.Request) {
	h.Game.ActivateRushHour()
	h.writeState(w)
}

func (h *Handler) cleanCafe(w http.ResponseWriter, r *http.Request) {
	h.Game.ActivateCleanCafe()
	h.writeState(w)
}

func (h *Handler) buyBundle(w http.ResponseWriter, r *http.Request) {
	var req BuyBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := h.Game.BuyBundle(req.BundleID); err != nil {
		writeDomainError(w, err)
		return
	}
	h.writeState(w)
}

func (h *Handler) bundleQR(w http.ResponseWriter, r *http.Request) {
	bundleID := mux.Vars(r)["bundleId"]
	if h.Game.Catalog().GetBundle(bundleID) == nil {
		http.Error(w, "Bundle not found", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate(bundleID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) writeState(w http.ResponseWriter) {
	raw, err := h.Game.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// writeDomainError maps simulation failures onto HTTP statuses. Every
// one of these is a recovered, user-visible condition, never a crash.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientResources):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, game.ErrCellOccupied),
		errors.Is(err, game.ErrAlreadyCooking),
		errors.Is(err, game.ErrNoFreeEquipment):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrUnknownRecipe),
		errors.Is(err, game.ErrUnknownBundle),
		errors.Is(err, game.ErrNoCustomer):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrOrderMismatch),
		errors.Is(err, game.ErrNothingToCollect):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

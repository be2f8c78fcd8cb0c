package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"truckstock/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Handler exposes the ApplicationService as a JSON API plus a summary
// export download. The interactive operator UI lives outside this process;
// this surface is what it calls.
type Handler struct {
	svc app.ApplicationService
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)
	r.Get("/api/locations", h.locations)
	r.Get("/api/items", h.items)
	r.Get("/api/waste", h.wasteLog)
	r.Get("/api/summary", h.summary)
	r.Get("/api/summary/export", h.exportSummary)

	// Mutations: 64 KB body limit, requests are tiny.
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(64 << 10))
		r.Post("/api/receive", h.receive)
		r.Post("/api/move", h.move)
		r.Post("/api/waste", h.recordWaste)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) locations(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListLocations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) wasteLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, "limit must be a non-negative integer", "INVALID_INPUT", http.StatusBadRequest)
			return
		}
		limit = n
	}
	result, err := h.svc.ListWasteRecords(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Summary)
}

// exportSummary streams the summary as a download. format=xlsx (default)
// or format=csv.
func (h *Handler) exportSummary(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="summary-`+stamp+`.xlsx"`)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="summary-`+stamp+`.csv"`)
	default:
		writeError(w, r, "format must be xlsx or csv", "INVALID_INPUT", http.StatusBadRequest)
		return
	}

	if err := h.svc.ExportSummary(r.Context(), w, format); err != nil {
		// Headers are already out; all we can do is log via the middleware
		// status and abort the body.
		writeServiceError(w, r, err)
	}
}

type receivePayload struct {
	Description string          `json:"description"`
	SizePack    string          `json:"size_pack"`
	Location    string          `json:"location"`
	Qty         decimal.Decimal `json:"qty"`
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var p receivePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, r, "invalid JSON body", "INVALID_INPUT", http.StatusBadRequest)
		return
	}
	result, err := h.svc.ReceiveStock(r.Context(), app.ReceiveRequest{
		Description: p.Description,
		SizePack:    p.SizePack,
		Location:    p.Location,
		Qty:         p.Qty,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

type movePayload struct {
	ItemID int             `json:"item_id"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Qty    decimal.Decimal `json:"qty"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	var p movePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, r, "invalid JSON body", "INVALID_INPUT", http.StatusBadRequest)
		return
	}
	result, err := h.svc.MoveStock(r.Context(), app.MoveRequest{
		ItemID: p.ItemID,
		From:   p.From,
		To:     p.To,
		Qty:    p.Qty,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

type wastePayload struct {
	ItemID    int             `json:"item_id"`
	Location  string          `json:"location"`
	Qty       decimal.Decimal `json:"qty"`
	Reason    string          `json:"reason"`
	WasteDate string          `json:"waste_date"`
}

func (h *Handler) recordWaste(w http.ResponseWriter, r *http.Request) {
	var p wastePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, r, "invalid JSON body", "INVALID_INPUT", http.StatusBadRequest)
		return
	}
	result, err := h.svc.RecordWaste(r.Context(), app.WasteRequest{
		ItemID:    p.ItemID,
		Location:  p.Location,
		Qty:       p.Qty,
		Reason:    p.Reason,
		WasteDate: p.WasteDate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

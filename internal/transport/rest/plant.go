package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// plantService defines the minimal interface needed by PlantHandler.
type plantService interface {
	GetPlants(ctx context.Context, uow plant.UnitOfWork) ([]*domain.Plant, error)
	GetPlant(ctx context.Context, uow plant.UnitOfWork, id int64) (*domain.Plant, error)
	CreatePlant(ctx context.Context, uow plant.UnitOfWork, input plant.CreatePlantInput) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, uow plant.UnitOfWork, input plant.UpdatePlantInput) (*domain.Plant, error)
	DeletePlant(ctx context.Context, uow plant.UnitOfWork, id int64) error
	AddCareLog(ctx context.Context, uow plant.UnitOfWork, input plant.AddCareLogInput) (*domain.CareLog, error)
	ListCareLogs(ctx context.Context, uow plant.UnitOfWork, plantID int64) ([]domain.CareLog, error)
}

// UnitOfWorkFactory opens a fresh unit of work for one request.
type UnitOfWorkFactory func() plant.UnitOfWork

// PlantHandler serves the plant and care log endpoints.
type PlantHandler struct {
	svc    plantService
	newUoW UnitOfWorkFactory
	log    *slog.Logger
}

// NewPlantHandler creates a PlantHandler.
func NewPlantHandler(svc plantService, newUoW UnitOfWorkFactory, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{svc: svc, newUoW: newUoW, log: logger.With("handler", "plant")}
}

// serverFields are accepted in request bodies so a fetched plant can be sent
// back unchanged; their values are ignored.
type serverFields struct {
	ID           json.RawMessage `json:"id,omitempty"`
	NextWatering json.RawMessage `json:"next_watering,omitempty"`
	CreatedAt    json.RawMessage `json:"created_at,omitempty"`
	UpdatedAt    json.RawMessage `json:"updated_at,omitempty"`
	CareLogs     json.RawMessage `json:"care_logs,omitempty"`
}

type createPlantRequest struct {
	Name              string     `json:"name"`
	Species           string     `json:"species"`
	Description       *string    `json:"description"`
	WateringFrequency string     `json:"watering_frequency"`
	LightRequirement  string     `json:"light_requirement"`
	LastWatered       *time.Time `json:"last_watered"`
	serverFields
}

// updatePlantRequest is a partial update. Absent fields are unchanged; null
// clears description and last_watered and is ignored for the rest.
type updatePlantRequest struct {
	Name              *string             `json:"name"`
	Species           *string             `json:"species"`
	Description       optional[string]    `json:"description"`
	WateringFrequency *string             `json:"watering_frequency"`
	LightRequirement  *string             `json:"light_requirement"`
	LastWatered       optional[time.Time] `json:"last_watered"`
	serverFields
}

type addCareLogRequest struct {
	Action string  `json:"action"`
	Notes  *string `json:"notes"`
}

type plantResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Species           string            `json:"species"`
	Description       *string           `json:"description"`
	WateringFrequency string            `json:"watering_frequency"`
	LightRequirement  string            `json:"light_requirement"`
	LastWatered       *time.Time        `json:"last_watered"`
	NextWatering      *time.Time        `json:"next_watering"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	CareLogs          []careLogResponse `json:"care_logs"`
}

type careLogResponse struct {
	ID        int64     `json:"id"`
	PlantID   int64     `json:"plant_id"`
	Action    string    `json:"action"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields"`
}

// List handles GET /plants.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.svc.GetPlants(r.Context(), h.newUoW())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		resp = append(resp, toPlantResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /plants/{id}.
func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetPlant(r.Context(), h.newUoW(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlantResponse(p))
}

// Create handles POST /plants.
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	p, err := h.svc.CreatePlant(r.Context(), h.newUoW(), plant.CreatePlantInput{
		Name:              req.Name,
		Species:           req.Species,
		Description:       req.Description,
		WateringFrequency: domain.WateringFrequency(req.WateringFrequency),
		LightRequirement:  domain.LightRequirement(req.LightRequirement),
		LastWatered:       req.LastWatered,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlantResponse(p))
}

// Update handles PUT /plants/{id}. Omitted fields keep their current values.
func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updatePlantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	input := plant.UpdatePlantInput{
		PlantID:          id,
		Name:             req.Name,
		Species:          req.Species,
		Description:      req.Description.Value,
		LastWatered:      req.LastWatered.Value,
		ClearDescription: req.Description.cleared(),
		ClearLastWatered: req.LastWatered.cleared(),
	}
	if req.WateringFrequency != nil {
		f := domain.WateringFrequency(*req.WateringFrequency)
		input.WateringFrequency = &f
	}
	if req.LightRequirement != nil {
		l := domain.LightRequirement(*req.LightRequirement)
		input.LightRequirement = &l
	}

	p, err := h.svc.UpdatePlant(r.Context(), h.newUoW(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlantResponse(p))
}

// Delete handles DELETE /plants/{id}. Deleting an unknown plant succeeds.
func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePlant(r.Context(), h.newUoW(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Plant deleted successfully"})
}

// AddCareLog handles POST /plants/{id}/care-logs.
func (h *PlantHandler) AddCareLog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req addCareLogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	entry, err := h.svc.AddCareLog(r.Context(), h.newUoW(), plant.AddCareLogInput{
		PlantID: id,
		Action:  req.Action,
		Notes:   req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCareLogResponse(*entry))
}

// ListCareLogs handles GET /plants/{id}/care-logs.
func (h *PlantHandler) ListCareLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	logs, err := h.svc.ListCareLogs(r.Context(), h.newUoW(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCareLogResponses(logs))
}

func (h *PlantHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, toValidationErrorResponse(verr))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Plant not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseID reads the {id} path value. Anything but a positive integer cannot
// name a plant and is answered with 404.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "Plant not found")
		return 0, false
	}
	return id, true
}

func toPlantResponse(p *domain.Plant) plantResponse {
	return plantResponse{
		ID:                p.ID,
		Name:              p.Name,
		Species:           p.Species,
		Description:       p.Description,
		WateringFrequency: p.WateringFrequency.String(),
		LightRequirement:  p.LightRequirement.String(),
		LastWatered:       p.LastWatered,
		NextWatering:      p.NextWatering,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		CareLogs:          toCareLogResponses(p.CareLogs),
	}
}

func toCareLogResponse(l domain.CareLog) careLogResponse {
	return careLogResponse{
		ID:        l.ID,
		PlantID:   l.PlantID,
		Action:    l.Action,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}

func toCareLogResponses(logs []domain.CareLog) []careLogResponse {
	out := make([]careLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toCareLogResponse(l))
	}
	return out
}

func toValidationErrorResponse(verr *domain.ValidationError) validationErrorResponse {
	fields := make([]fieldErrorResponse, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return validationErrorResponse{Error: "validation failed", Fields: fields}
}

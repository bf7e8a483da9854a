package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/jinmai-creation/internal/pipeline"
	"github.com/jonathan/jinmai-creation/internal/server/middleware"
	"github.com/jonathan/jinmai-creation/internal/types"
)

// Service identity reported by the health endpoint.
const (
	ServiceName    = "Jinmai AI Creation API"
	ServiceVersion = "2.0.0"
)

// maxBodyBytes caps the size of a creation request body.
const maxBodyBytes = 64 << 10

// serviceFeatures are advertised by the health endpoint.
var serviceFeatures = []string{"AI内容生成", "多模型支持", "智能优化"}

// HealthResponse represents the response for /api/health
type HealthResponse struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Features  []string `json:"features"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: s.now().Format("2006-01-02T15:04:05.000000Z07:00"),
		Service:   ServiceName,
		Version:   ServiceVersion,
		Features:  serviceFeatures,
	})
}

// handleListModels returns the model descriptors
func (s *Server) handleListModels(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Models())
}

// handleListBrands returns the brand catalog, optionally filtered by ?category=
func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands := s.catalog.Brands()
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := make([]types.Brand, 0, len(brands))
		for _, b := range brands {
			if b.Category == category {
				filtered = append(filtered, b)
			}
		}
		brands = filtered
	}
	s.jsonResponse(w, http.StatusOK, brands)
}

// handleGetBrand returns a single brand by ID
func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidBrandID)
		return
	}

	brand, ok := s.catalog.BrandByID(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, msgBrandNotFound)
		return
	}
	s.jsonResponse(w, http.StatusOK, brand)
}

// handleCreate runs a creation and returns the full response
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreationRequest(r)
	if err != nil {
		s.recordCreation(r, req, err)
		s.writeCreationError(w, err)
		return
	}

	resp, err := s.creator.Create(r.Context(), req)
	if err != nil {
		s.recordCreation(r, req, err)
		s.writeCreationError(w, err)
		return
	}

	s.recordCreation(r, req, nil)
	s.metrics.QualityScore.Observe(float64(resp.QualityScore))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCreateStream runs a creation and streams its progress via SSE
func (s *Server) handleCreateStream(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreationRequest(r)
	if err != nil {
		s.recordCreation(r, req, err)
		s.writeCreationError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	creator := s.creator.WithProgress(func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			s.logger.Warn("failed to write SSE event",
				zap.String("request_id", middleware.GetRequestID(r)),
				zap.Error(err),
			)
		}
	})

	resp, err := creator.Create(r.Context(), req)
	s.recordCreation(r, req, err)
	if err != nil {
		status := HTTPStatus(err)
		message := err.Error()
		if status == http.StatusNotFound {
			message = msgBrandNotFound
		}
		sse.WriteError(status, message)
		return
	}

	s.metrics.QualityScore.Observe(float64(resp.QualityScore))
	sse.WriteComplete(resp)
}

// decodeCreationRequest parses a creation body. A missing, null or
// empty-object body is a validation error. A brandId that is absent or not an
// integer decodes as zero so that the lookup reports it as not found.
func decodeCreationRequest(r *http.Request) (types.CreationRequest, error) {
	var req types.CreationRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return req, &ErrValidation{Message: msgMalformedBody}
	}
	if len(body) > maxBodyBytes {
		return req, &ErrValidation{Message: msgFieldTooLong}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, &ErrValidation{Message: msgEmptyBody}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, &ErrValidation{Message: msgMalformedBody}
	}
	if len(fields) == 0 {
		return req, &ErrValidation{Message: msgEmptyBody}
	}

	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, &ErrValidation{Field: typeErr.Field, Message: msgMalformedBody}
		}
		return req, &ErrValidation{Message: msgMalformedBody}
	}

	req.ApplyDefaults()
	return req, nil
}

// recordCreation logs and counts a creation attempt.
func (s *Server) recordCreation(r *http.Request, req types.CreationRequest, err error) {
	typeLabel := "OTHER"
	if req.CreationType.IsKnown() {
		typeLabel = req.CreationType.String()
	}

	outcome := "success"
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		outcome = "invalid"
	case http.StatusNotFound:
		outcome = "not_found"
	case http.StatusInternalServerError:
		if err != nil {
			outcome = "error"
		}
	}
	s.metrics.CreationsTotal.WithLabelValues(typeLabel, outcome).Inc()

	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(r)),
		zap.Int("brand_id", req.BrandID),
		zap.String("type", string(req.CreationType)),
		zap.String("outcome", outcome),
		zap.String("model", req.AIModel),
	}
	if model, ok := s.catalog.ModelByID(req.AIModel); ok {
		fields = append(fields, zap.String("model_name", model.Name))
	}
	if err != nil && outcome == "error" {
		s.logger.Error("creation failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Debug("creation", fields...)
}

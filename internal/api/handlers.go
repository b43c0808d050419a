package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/store"
)

type calculationResponse struct {
	Kind     domain.Kind   `json:"kind"`
	Name     string        `json:"name,omitempty"`
	Inputs   domain.Input  `json:"inputs"`
	Result   domain.Result `json:"result"`
	Warnings []string      `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type calculatorInfo struct {
	Kind     domain.Kind               `json:"kind"`
	Title    string                    `json:"title"`
	Defaults domain.Input              `json:"defaults"`
	Fields   []calculation.FieldBounds `json:"fields"`
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) sendError(w http.ResponseWriter, err error) {
	var ve *calculation.ValidationError
	switch {
	case errors.As(err, &ve):
		sendJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, store.ErrNotFound):
		sendJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.Logger.Errorf("request failed: %v", err)
		sendJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeEnvelope reads a {"kind","name","inputs"} body; it writes a 400 and returns false on failure
func decodeEnvelope(w http.ResponseWriter, r *http.Request) (domain.Envelope, bool) {
	var env domain.Envelope
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&env); err != nil {
		sendJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return env, false
	}
	return env, true
}

func (s *Server) handleCalculators(w http.ResponseWriter, r *http.Request) {
	var infos []calculatorInfo
	for _, kind := range domain.AllKinds() {
		defaults, err := domain.DefaultInput(kind)
		if err != nil {
			s.sendError(w, err)
			return
		}
		infos = append(infos, calculatorInfo{Kind: kind, Title: kind.Title(), Defaults: defaults, Fields: calculation.Bounds(kind)})
	}
	sendJSON(w, http.StatusOK, infos)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	env, ok := decodeEnvelope(w, r)
	if !ok {
		return
	}
	res, err := s.Engine.Calculate(env.Input)
	if err != nil {
		s.sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, calculationResponse{
		Kind:     env.Kind,
		Name:     env.Name,
		Inputs:   env.Input,
		Result:   res,
		Warnings: output.Warnings(res, output.DefaultCurrency),
	})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	env, ok := decodeEnvelope(w, r)
	if !ok {
		return
	}
	res, err := s.Engine.Calculate(env.Input)
	if err != nil {
		s.sendError(w, err)
		return
	}
	rec, err := s.Store.Save(r.Context(), env.Name, env.Input, res)
	if err != nil {
		s.sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.Store.List(r.Context())
	if err != nil {
		s.sendError(w, err)
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	sendJSON(w, http.StatusOK, records)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Clear(r.Context()); err != nil {
		s.sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

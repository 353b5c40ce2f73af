package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/netsketch/netsketch/pkg/errors"
	"github.com/netsketch/netsketch/pkg/network"
	"github.com/netsketch/netsketch/pkg/pipeline"
	"github.com/netsketch/netsketch/pkg/session"
)

// diagramResponse is the JSON view of a session.
type diagramResponse struct {
	ID      string          `json:"id"`
	Network network.Network `json:"network"`
	Style   network.Style   `json:"style"`
}

type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess := session.New(network.Default(), network.DefaultStyle(), s.sessionTTL)
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeDiagram(w, http.StatusCreated, sess)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.writeDiagram(w, http.StatusOK, sess)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRender renders the session's diagram. Width and height come from
// query parameters so the browser can report its viewport; format defaults
// to svg.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "unsupported format %q", format))
		return
	}

	opts := pipeline.Options{
		Network: sess.Network,
		Style:   sess.Style,
		Width:   queryFloat(r, "width", pipeline.DefaultWidth),
		Height:  queryFloat(r, "height", pipeline.DefaultHeight),
		Formats: []string{format},
		Logger:  s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) handleAddLayer(w http.ResponseWriter, r *http.Request) {
	s.edit(w, r, func(sess *session.Session) error {
		sess.Network = sess.Network.Add()
		return nil
	})
}

func (s *Server) handleRemoveLayer(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.New(apperrors.ErrCodeInvalidInput, "layer index must be an integer"))
		return
	}
	s.edit(w, r, func(sess *session.Session) error {
		sess.Network = sess.Network.Remove(index)
		return nil
	})
}

func (s *Server) handleSetNeurons(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.New(apperrors.ErrCodeInvalidInput, "layer index must be an integer"))
		return
	}

	var body struct {
		Neurons int `json:"neurons"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	s.edit(w, r, func(sess *session.Session) error {
		sess.Network = sess.Network.SetNeurons(index, body.Neurons)
		return nil
	})
}

// handlePatchStyle overlays the request body onto the current style and
// normalizes the result. Unknown enum values fall back to defaults rather
// than erroring, matching the clamping behavior of the other edits.
func (s *Server) handlePatchStyle(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	patched := sess.Style
	if err := json.NewDecoder(r.Body).Decode(&patched); err != nil {
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode style patch"))
		return
	}

	// Colors flow into SVG attributes verbatim, so anything that is not a
	// hex color is rejected rather than clamped.
	for _, color := range []string{patched.EdgeColor, patched.NodeColor, patched.NodeBorderColor} {
		if color == "" {
			continue
		}
		if err := apperrors.ValidateHexColor(color); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	s.edit(w, r, func(sess *session.Session) error {
		sess.Style = patched.Normalize()
		return nil
	})
}

func (s *Server) handleReroll(w http.ResponseWriter, r *http.Request) {
	s.edit(w, r, func(sess *session.Session) error {
		sess.Style = network.Reroll(sess.Style)
		return nil
	})
}

// =============================================================================
// Helpers
// =============================================================================

// session loads the session named in the URL, writing the error response
// on failure.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusNotFound,
			apperrors.Wrap(apperrors.ErrCodeDiagramNotFound, err, "diagram %s", id))
		return nil, false
	}
	return sess, true
}

// edit applies fn to the session, refreshes its expiry, stores it, and
// writes the updated diagram.
func (s *Server) edit(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	if err := fn(sess); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sess.Touch()
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeDiagram(w, http.StatusOK, sess)
}

func (s *Server) writeDiagram(w http.ResponseWriter, status int, sess *session.Session) {
	s.writeJSON(w, status, diagramResponse{
		ID:      sess.ID,
		Network: sess.Network,
		Style:   sess.Style,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  apperrors.GetCode(err),
	})
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/octet-stream"
	}
}

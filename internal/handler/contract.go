package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/hostel-desk/internal/domain"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GenerateContract handles POST /stays/{id}/contract.
// The body is optional; when present its placeholders are applied after the
// stay's own values. The response is the filled .docx as a download named
// after the reservation, year and guest.
func (s *Server) GenerateContract(w http.ResponseWriter, r *http.Request) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		invalidRequest(w, "stay id must be an integer")
		return
	}

	var body ContractRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return
		}
		invalidRequest(w, "request body must be a JSON object")
		return
	}

	c, err := s.contracts.ForStay(r.Context(), id, domain.Placeholders(body.Placeholders))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "stay not found")
			return
		}
		s.serviceError(w, r, err)
		return
	}

	writeAttachment(w, docxContentType, c.Filename, c.Document)
}

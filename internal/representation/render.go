package representation

import (
	"encoding/json"
	"net/http"

	"restbucks/internal/dto"
	"restbucks/pkg/hal"
	"restbucks/pkg/logger"
)

type renderLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Render writes doc in the flavour the client asked for. Affordance templates are only
// sent to HAL-FORMS clients.
func Render(w http.ResponseWriter, r *http.Request, log renderLogger, status int, doc *hal.Representation) {
	mediaType := hal.Negotiate(r.Header.Get("Accept"))
	if mediaType != hal.MediaTypeHALForms {
		doc = doc.WithoutTemplates()
	}
	w.Header().Set("Vary", "Accept")

	writeJSON(w, log, mediaType, status, doc)
}

func RenderJSON(w http.ResponseWriter, log renderLogger, status int, body any) {
	writeJSON(w, log, "application/json", status, body)
}

// RenderError reports err to the client. Server-side failures are not described.
func RenderError(w http.ResponseWriter, log renderLogger, status int, err error) {
	body := dto.ErrorResponse{Error: http.StatusText(status)}
	if status < http.StatusInternalServerError && err != nil {
		message := err.Error()
		body.Message = &message
	}
	writeJSON(w, log, "application/json", status, body)
}

func writeJSON(w http.ResponseWriter, log renderLogger, contentType string, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("write response")
	}
}

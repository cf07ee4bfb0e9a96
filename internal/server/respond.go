package server

import (
	"net/http"

	"seqstats/internal/jsonutil"
	"seqstats/internal/logger"
	"seqstats/internal/perr"
	"seqstats/internal/writers"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	perr.Wire
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes v as application/json with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsonutil.Encode(w, v)
}

// writeError maps err onto a status and the wire payload. Server-side
// failures are logged; client errors are not.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := perr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Wire: perr.WireFrom(err), RequestID: reqIDOf(r)})
}

// writeAttachment sends body as a download named filename.
func writeAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		evt := logger.C(r.Context()).Warn()
		if writers.IsBrokenPipe(err) {
			evt = logger.C(r.Context()).Debug()
		}
		evt.Err(err).Str("file", filename).Msg("export not delivered")
	}
}

package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"seqstats/internal/logger"
	"seqstats/internal/normalize"
	"seqstats/internal/output"
	"seqstats/internal/perr"
	"seqstats/internal/runutil"
	"seqstats/internal/version"
	"seqstats/internal/writers"
)

// AnalyzeRequest is the body of /v1/analyze and /v1/export/{format}.
// Omitted windows fall back to the server configuration; sequence is
// capped at 10 MiB.
type AnalyzeRequest struct {
	ID         string `json:"id" validate:"omitempty,max=256"`
	Sequence   string `json:"sequence" validate:"required,max=10485760"`
	Window     *int   `json:"window" validate:"omitempty,gte=0"`
	SkewWindow *int   `json:"skew_window" validate:"omitempty,gte=1"`
	Skew       bool   `json:"skew"`
	MaxPoints  *int   `json:"max_points" validate:"omitempty,gte=0"`
	Save       bool   `json:"save"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// export describes one downloadable format.
type export struct {
	contentType string
	filename    string
}

var exports = map[string]export{
	output.FormatCSV:     {"text/csv; charset=utf-8", "dna_stats_report.csv"},
	output.FormatFASTA:   {"text/x-fasta; charset=utf-8", "sequence.fasta"},
	output.FormatDinuc:   {"text/tab-separated-values; charset=utf-8", "dinucleotides.tsv"},
	output.FormatWindows: {"text/tab-separated-values; charset=utf-8", "gc_windows.tsv"},
	output.FormatSkew:    {"text/tab-separated-values; charset=utf-8", "gc_skew.tsv"},
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version.Version})
}

// analyze normalizes and analyzes one request body.
func (s *Server) analyze(req AnalyzeRequest, forceSkew bool) (output.Report, error) {
	clean := normalize.Report(req.Sequence)
	if clean.Sequence == "" {
		return output.Report{}, perr.WithField(perr.ErrEmptySequence, "sequence")
	}

	a := s.cfg.Analysis
	window := a.DefaultWindow
	if req.Window != nil {
		window = *req.Window
	}
	id := req.ID
	if id == "" {
		id = "sequence"
	}
	rep := output.Report{
		ID:       id,
		Sequence: clean.Sequence,
		Dropped:  clean.Dropped,
		Metrics:  s.analyzer.Analyze(clean.Sequence, window),
	}

	if req.Skew || forceSkew {
		sw, limit := a.SkewWindow, a.MaxSkewPoints
		if req.SkewWindow != nil {
			sw = *req.SkewWindow
		}
		if req.MaxPoints != nil {
			limit = *req.MaxPoints
		}
		rep = rep.WithSkew(sw, limit)
	}
	return rep, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[AnalyzeRequest](w, r, s.cfg.Server.MaxBodyBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.Save && s.reports == nil {
		writeError(w, r, perr.New(perr.CodeUnavailable, "report archive is not configured"))
		return
	}

	rep, err := s.analyze(req, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.warn(r, rep)

	body := output.ToAPIReport(rep)
	status := http.StatusOK
	if req.Save {
		id, err := s.reports.Save(r.Context(), rep.Sequence, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		body.ID = id
		status = http.StatusCreated
	}
	writeJSON(w, status, body)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	ex, ok := exports[format]
	if !ok {
		writeError(w, r, perr.WithField(perr.Newf(perr.CodeInvalidArgument, "unsupported export format %q", format), "format"))
		return
	}
	req, err := parseJSON[AnalyzeRequest](w, r, s.cfg.Server.MaxBodyBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.analyze(req, format == output.FormatSkew)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.warn(r, rep)

	var buf bytes.Buffer
	opt := writers.Options{Header: true, Wrap: 60}
	if err := writers.Write(format, &buf, []output.Report{rep}, opt); err != nil {
		writeError(w, r, perr.Wrap(err, perr.CodeIO, "render export"))
		return
	}
	writeAttachment(w, r, ex.contentType, ex.filename, buf.Bytes())
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		writeError(w, r, perr.New(perr.CodeUnavailable, "report archive is not configured"))
		return
	}
	rep, err := s.reports.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// warn logs what the CLI would print as warnings.
func (s *Server) warn(r *http.Request, rep output.Report) {
	log := logger.C(r.Context())
	if rep.Dropped > 0 {
		log.Debug().Int("dropped", rep.Dropped).Msg("discarded characters outside A/T/G/C/N")
	}
	if msg := runutil.WindowWarning("window", rep.Metrics.Window.Width, rep.Metrics.Length); msg != "" {
		log.Debug().Msg(msg)
	}
}

package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
	"github.com/kirillkom/compliance-assistant/internal/core/ports"
	"github.com/kirillkom/compliance-assistant/internal/core/usecase"
	"github.com/kirillkom/compliance-assistant/internal/observability/metrics"
)

type Router struct {
	service       string
	conversations ports.ConversationService
	complaints    ports.ComplaintStore
	exporter      ports.ReportExporter
	metrics       *metrics.HTTPServerMetrics
	limiter       *visitorLimiter
}

func NewRouter(
	service string,
	conversations ports.ConversationService,
	complaints ports.ComplaintStore,
	exporter ports.ReportExporter,
	serverMetrics *metrics.HTTPServerMetrics,
	limiter *visitorLimiter,
) *Router {
	return &Router{
		service:       service,
		conversations: conversations,
		complaints:    complaints,
		exporter:      exporter,
		metrics:       serverMetrics,
		limiter:       limiter,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/conversations/", rt.conversationSubtree)
	mux.HandleFunc("/v1/complaints", rt.listComplaints)
	mux.HandleFunc("/v1/reports/complaints.xlsx", rt.exportComplaints)

	var handler http.Handler = mux
	if rt.limiter != nil {
		handler = rateLimitMiddleware(rt.limiter, handler)
	}
	handler = accessLogMiddleware(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) conversationSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/conversations/")
	switch {
	case strings.HasSuffix(rest, "/messages"):
		rt.submitText(w, r, strings.TrimSuffix(rest, "/messages"))
	case strings.HasSuffix(rest, "/uploads"):
		rt.submitUpload(w, r, strings.TrimSuffix(rest, "/uploads"))
	default:
		rt.snapshot(w, r, rest)
	}
}

func (rt *Router) submitText(w http.ResponseWriter, r *http.Request, conversationID string) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	msg, err := rt.conversations.SubmitText(r.Context(), conversationID, req.Text)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordTurn(rt.service, string(usecase.ClassifyIntent(req.Text)))
	}
	writeJSON(w, http.StatusAccepted, msg)
}

func (rt *Router) submitUpload(w http.ResponseWriter, r *http.Request, conversationID string) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req domain.UploadDescriptor
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	msg, err := rt.conversations.SubmitUpload(r.Context(), conversationID, req)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordUpload(rt.service)
	}
	writeJSON(w, http.StatusAccepted, msg)
}

func (rt *Router) snapshot(w http.ResponseWriter, r *http.Request, conversationID string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	snapshot, err := rt.conversations.Snapshot(r.Context(), conversationID)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (rt *Router) listComplaints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	records, err := rt.complaints.List(r.Context())
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (rt *Router) exportComplaints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	records, err := rt.complaints.List(r.Context())
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	buf, err := rt.exporter.Complaints(records)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordReportExport(rt.service)
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="complaints.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

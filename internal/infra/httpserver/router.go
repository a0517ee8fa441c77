package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/privacyshield/linkscanner/internal/application/analysis"
	appfeedback "github.com/privacyshield/linkscanner/internal/application/feedback"
	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
	"github.com/privacyshield/linkscanner/internal/middleware"
)

// genericError is the only 5xx text clients ever see; provider errors
// stay in the server log.
const genericError = "Something went wrong, try again"

type Router struct {
	analysisSvc *appanalysis.Service
	feedbackSvc *appfeedback.Service
}

func NewRouter(analysisSvc *appanalysis.Service, feedbackSvc *appfeedback.Service, clientOrigin string, limiter *middleware.RateLimiter, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{analysisSvc: analysisSvc, feedbackSvc: feedbackSvc}
	mux := chi.NewRouter()

	origins := []string{"*"}
	if clientOrigin != "" {
		origins = []string{clientOrigin}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api/link-scanner", func(rt chi.Router) {
		if limiter != nil {
			rt.Use(limiter.Middleware)
		}
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Post("/report", r.wrap(r.handleReport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain errors onto HTTP statuses. Input-shape problems get
// a specific message; everything else collapses into one generic text.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrInvalidURL):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrMessageTooLong), errors.Is(err, domain.ErrURLTooLong):
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			log.Printf("http: %s %s failed: %v", req.Method, req.URL.Path, err)
			writeError(w, http.StatusInternalServerError, genericError)
		}
	}
}

// POST /api/link-scanner/analyze
// Body: {"message": "...", "conversation": [{"role","content"}]}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Message      string        `json:"message"`
		Conversation []domain.Turn `json:"conversation"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil
	}

	res, err := r.analysisSvc.Analyze(req.Context(), appanalysis.Command{
		Message:      body.Message,
		Conversation: body.Conversation,
	})
	if err != nil {
		return err
	}

	middleware.IncrementAnalyses()
	if res.Mock {
		middleware.IncrementMockServed()
	}

	resp := map[string]any{
		"success": true,
		"data":    res.Report,
	}
	if res.Mock {
		resp["isMock"] = true
	}
	return writeJSON(w, http.StatusOK, resp)
}

// POST /api/link-scanner/report
// Body: {"url": "...", "isMalicious": true}
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		URL         string `json:"url"`
		IsMalicious bool   `json:"isMalicious"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil
	}
	if body.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return nil
	}

	ack, err := r.feedbackSvc.Report(req.Context(), body.URL, body.IsMalicious)
	if err != nil {
		return err
	}
	middleware.IncrementFeedback()

	resp := map[string]any{
		"success": true,
		"message": "thanks, the model will learn from this",
	}
	if ack.TrainerOut != "" {
		resp["data"] = json.RawMessage(toJSONOrString(ack.TrainerOut))
	}
	return writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// toJSONOrString keeps a trainer JSON ack as-is and wraps anything else
// into a JSON string.
func toJSONOrString(s string) []byte {
	if json.Valid([]byte(s)) {
		return []byte(s)
	}
	b, _ := json.Marshal(s)
	return b
}

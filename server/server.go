package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"marketgenius/clipboard"
	"marketgenius/generator"
	"marketgenius/view"
)

//go:embed web
var embeddedStatic embed.FS

// Server exposes the form and result views over JSON and serves the UI.
type Server struct {
	form     *view.Form
	result   *view.Result
	timeout  time.Duration
	logger   *log.Logger
	staticFS http.Handler
}

// New wires the views. timeout bounds one generation request; zero means none.
func New(form *view.Form, result *view.Result, timeout time.Duration, logger *log.Logger) (*Server, error) {
	if form == nil || result == nil {
		return nil, errors.New("form and result views required")
	}
	if logger == nil {
		logger = log.Default()
	}

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}

	return &Server{
		form:     form,
		result:   result,
		timeout:  timeout,
		logger:   logger,
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/form", s.handleForm)
	mux.HandleFunc("PATCH /api/form", s.handleFormUpdate)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/result", s.handleResult)
	mux.HandleFunc("POST /api/result/copy", s.handleCopy)
	mux.HandleFunc("POST /api/result/reset", s.handleReset)
	mux.Handle("GET /", s.staticFS)
	return s.logMiddleware(mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Printf("[server] listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Printf("[server] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// --- Handlers ---

type pageResp struct {
	Form   view.FormSnapshot `json:"form"`
	Result view.Panel        `json:"result"`
}

type formUpdateReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type errorResp struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	pageResp
}

func (s *Server) page() pageResp {
	return pageResp{Form: s.form.Snapshot(), Result: s.result.Render()}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.page())
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.form.Snapshot())
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.result.Render())
}

func (s *Server) handleFormUpdate(w http.ResponseWriter, r *http.Request) {
	var req formUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.form.Set(view.Field(req.Field), req.Value); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.page())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	_, err := s.form.Submit(ctx)
	switch {
	case errors.Is(err, view.ErrSubmitDisabled):
		s.writeError(w, http.StatusConflict, err)
	case generator.IsValidation(err):
		s.writeError(w, http.StatusUnprocessableEntity, err)
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, s.page())
	}
}

func (s *Server) handleCopy(w http.ResponseWriter, _ *http.Request) {
	_, err := s.result.Copy()
	switch {
	case errors.Is(err, view.ErrNothingToCopy):
		s.writeError(w, http.StatusConflict, err)
	case errors.Is(err, clipboard.ErrUnavailable):
		s.writeError(w, http.StatusServiceUnavailable, err)
	case err != nil:
		s.logger.Printf("[server] copy failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, s.page())
	}
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.result.Reset()
	writeJSON(w, http.StatusOK, s.page())
}

// --- Helpers ---

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResp{Error: err.Error(), pageResp: s.page()}
	var ve *generator.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("[server] %s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

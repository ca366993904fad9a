// Package web serves the single page form that drafts and sends a post.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Masterminds/sprig"
	"github.com/acrmp/postbot/broadcast"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//go:embed templates/*.html
var templateFS embed.FS

//counterfeiter:generate . Broadcaster
type Broadcaster interface {
	GenerateAndSend(ctx context.Context, topic, phone string) broadcast.Result
}

// A Server renders the form and runs submissions through a Broadcaster.
type Server struct {
	logger       *slog.Logger
	broadcaster  Broadcaster
	defaultPhone string
	page         *template.Template
	router       chi.Router
}

// NewServer creates a Server. The phone field is pre-filled with
// defaultPhone.
func NewServer(logger *slog.Logger, b Broadcaster, defaultPhone string) *Server {
	s := &Server{
		logger:       logger,
		broadcaster:  b,
		defaultPhone: defaultPhone,
		page: template.Must(template.New("page.html").
			Funcs(sprig.HtmlFuncMap()).
			ParseFS(templateFS, "templates/page.html")),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.showForm)
	r.Post("/", s.submitForm)
	r.Post("/api/posts", s.createPost)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type pageData struct {
	Topic        string
	Phone        string
	DefaultPhone string
	Result       *broadcast.Result
}

func (s *Server) showForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{DefaultPhone: s.defaultPhone})
}

func (s *Server) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	d := pageData{
		Topic:        r.PostForm.Get("topic"),
		Phone:        r.PostForm.Get("phone"),
		DefaultPhone: s.defaultPhone,
	}
	result := s.broadcaster.GenerateAndSend(detach(r), d.Topic, d.Phone)
	d.Result = &result
	s.render(w, d)
}

func (s *Server) render(w http.ResponseWriter, d pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, d); err != nil {
		s.logger.Error("rendering page", "err", err)
	}
}

type postRequest struct {
	Topic string `json:"topic"`
	Phone string `json:"phone"`
}

type postResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	Content string `json:"content,omitempty"`
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, postResponse{Outcome: broadcast.Warning.String(), Message: "invalid request body"})
		return
	}

	result := s.broadcaster.GenerateAndSend(detach(r), req.Topic, req.Phone)
	render.Status(r, statusFor(result.Outcome))
	render.JSON(w, r, postResponse{
		Outcome: result.Outcome.String(),
		Message: result.Message,
		Content: result.Content,
	})
}

// detach keeps a send running when the client goes away. A send that has
// started cannot be aborted.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func statusFor(o broadcast.Outcome) int {
	switch o {
	case broadcast.Sent:
		return http.StatusOK
	case broadcast.Warning:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

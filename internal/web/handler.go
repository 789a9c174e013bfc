// Package web serves the browser UI: a chat tab for symptom questions and
// a lookup tab for disease explanations.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"medinfo-agent/internal/agent"
	"medinfo-agent/internal/session"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	sessionCookie     = "medinfo_session"
	sessionContextKey = "sessionID"
	sessionTTL        = 30 * 24 * time.Hour
)

// Consultant produces the consultation and disease-lookup reports the
// pages render.
type Consultant interface {
	Consult(ctx context.Context, profile agent.Profile, question string) agent.Report
	LookupDisease(ctx context.Context, profile agent.Profile, disease string) agent.Report
}

// Options configures a Handler.
type Options struct {
	// Agent answers consultations. Required.
	Agent Consultant

	// Sessions stores chat transcripts. A default in-memory store is
	// created when nil.
	Sessions *session.Store

	// Logger for request and handler logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Handler owns the routes, templates and per-browser session state.
type Handler struct {
	agent      Consultant
	sessions   *session.Store
	logger     *slog.Logger
	markdown   goldmark.Markdown
	tmpl       *template.Template
	staticRoot fs.FS
}

// NewHandler creates a Handler with parsed templates and static assets.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Agent == nil {
		return nil, errors.New("agent is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewStore(session.Options{})
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	return &Handler{
		agent:      opts.Agent,
		sessions:   sessions,
		logger:     logger,
		markdown:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		tmpl:       tmpl,
		staticRoot: staticRoot,
	}, nil
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), h.requestLogger(), h.withSession())
	engine.SetHTMLTemplate(h.tmpl)

	engine.StaticFS("/static", http.FS(h.staticRoot))

	engine.GET("/", h.showChat)
	engine.POST("/chat", h.handleConsult)
	engine.GET("/disease", h.showDisease)
	engine.POST("/disease", h.handleDisease)
	engine.GET("/healthz", h.handleHealth)

	return engine
}

type consultForm struct {
	Name    string `form:"name"`
	Age     int    `form:"age" binding:"gte=0,lte=120"`
	Gender  string `form:"gender"`
	Message string `form:"message"`
}

type diseaseForm struct {
	Name    string `form:"name"`
	Age     int    `form:"age" binding:"gte=0,lte=120"`
	Gender  string `form:"gender"`
	Disease string `form:"disease"`
}

func (h *Handler) showChat(c *gin.Context) {
	h.renderChat(c, defaultProfile(), nil)
}

func (h *Handler) handleConsult(c *gin.Context) {
	var form consultForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form input")
		return
	}

	profile := profileFromForm(form.Name, form.Age, form.Gender)

	if strings.TrimSpace(form.Message) == "" {
		h.renderChat(c, profile, nil)
		return
	}

	sid := sessionID(c)
	h.sessions.Append(sid, session.Turn{Role: session.RoleUser, Text: form.Message})

	report := h.agent.Consult(c.Request.Context(), profile, form.Message)

	assistant := report.Answer.Markdown
	if report.Answer.Err != "" {
		assistant = report.Answer.Err
	}
	h.sessions.Append(sid, session.Turn{Role: session.RoleAssistant, Text: assistant})

	h.renderChat(c, profile, &report)
}

func (h *Handler) showDisease(c *gin.Context) {
	h.renderDisease(c, defaultProfile(), "", nil)
}

func (h *Handler) handleDisease(c *gin.Context) {
	var form diseaseForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form input")
		return
	}

	profile := profileFromForm(form.Name, form.Age, form.Gender)

	if strings.TrimSpace(form.Disease) == "" {
		h.renderDisease(c, profile, "", nil)
		return
	}

	report := h.agent.LookupDisease(c.Request.Context(), profile, form.Disease)
	h.renderDisease(c, profile, form.Disease, &report)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) renderChat(c *gin.Context, profile agent.Profile, report *agent.Report) {
	page := chatPage{
		pageData: pageData{Active: "chat", Profile: profile, Genders: genders},
	}

	for _, turn := range h.sessions.Snapshot(sessionID(c)) {
		page.Transcript = append(page.Transcript, transcriptEntry{
			Role: turn.Role,
			HTML: h.renderMarkdown(turn.Text),
		})
	}

	if report != nil {
		page.HasReport = true
		page.Nutrition = nutritionCard(report.Nutrition)
		page.Medicine = medicineCard(report.Medicine)
	}

	c.HTML(http.StatusOK, "chat.html", page)
}

func (h *Handler) renderDisease(c *gin.Context, profile agent.Profile, query string, report *agent.Report) {
	page := diseasePage{
		pageData: pageData{Active: "disease", Profile: profile, Genders: genders},
		Query:    query,
	}

	if report != nil {
		page.Submitted = true
		page.AnswerErr = report.Answer.Err
		if report.Answer.Markdown != "" {
			page.Answer = h.renderMarkdown(report.Answer.Markdown)
		}
		page.Nutrition = nutritionCard(report.Nutrition)
		page.Medicine = medicineCard(report.Medicine)
	}

	c.HTML(http.StatusOK, "disease.html", page)
}

// withSession ensures every browser carries a session cookie and exposes
// the session ID on the gin context.
func (h *Handler) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, int(sessionTTL.Seconds()), "/", "", false, true)
		}
		c.Set(sessionContextKey, sid)
		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

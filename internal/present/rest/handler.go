package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"

	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/internal/content"
	"github.com/niya-shroff/folio/internal/domain"
	"github.com/niya-shroff/folio/internal/mail"
	"github.com/niya-shroff/folio/internal/present/rest/presenter"
	"github.com/niya-shroff/folio/internal/search"
	"github.com/niya-shroff/folio/internal/service"
	"github.com/niya-shroff/folio/internal/usecase"
)

const searchCacheTTL = 30 // seconds

type Handler struct {
	config   domain.Config
	sessions *search.Manager
	contents *usecase.ContentUsecase
	projects *usecase.ProjectUsecase
	auth     *service.AuthService
	signal   *service.SignalService
	mailer   *mail.Mailer
	cache    *memcache.Client
}

func NewHandler(
	config domain.Config,
	sessions *search.Manager,
	contents *usecase.ContentUsecase,
	projects *usecase.ProjectUsecase,
	auth *service.AuthService,
	signal *service.SignalService,
	mailer *mail.Mailer,
	cache *memcache.Client,
) *Handler {
	return &Handler{
		config:   config,
		sessions: sessions,
		contents: contents,
		projects: projects,
		auth:     auth,
		signal:   signal,
		mailer:   mailer,
		cache:    cache,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/api/v1/search", h.handleSearch)
	e.GET("/api/v1/search/live", h.handleSearchLive)
	e.POST("/api/v1/search/resolve", h.handleResolve)

	e.GET("/api/v1/pages", h.handlePages)
	e.GET("/api/v1/experience", h.handleExperience)
	e.GET("/api/v1/education", h.handleEducation)
	e.GET("/api/v1/writing/poems", h.handlePoems)
	e.GET("/api/v1/projects", h.handleProjects)
	e.GET("/api/v1/photos", h.handlePhotos)
	e.GET("/api/v1/videos", h.handleVideos)
	e.GET("/api/v1/writings", h.handleWritings)

	e.POST("/api/v1/contact", h.handleContact)
	e.POST("/api/v1/admin/login", h.handleLogin)
	e.POST("/api/v1/admin/logout", h.handleLogout)

	admin := e.Group("/api/v1/admin", authMW)
	admin.POST("/photos", h.handleAddPhoto)
	admin.DELETE("/photos/:id", h.handleDeletePhoto)
	admin.POST("/videos", h.handleAddVideo)
	admin.DELETE("/videos/:id", h.handleDeleteVideo)
	admin.POST("/writings", h.handleAddWriting)
	admin.DELETE("/writings/:id", h.handleDeleteWriting)
}

type searchResponse struct {
	Session string               `json:"session"`
	Query   string               `json:"query"`
	Results []folio.SearchResult `json:"results"`
	Loading []string             `json:"loading"`
}

func (h *Handler) handleSearch(c echo.Context) error {
	ctx := c.Request().Context()

	session := h.sessions.Get(c.Request().Header.Get(domain.SearchSessionHeader))
	session.Open(ctx)

	query := c.QueryParam("q")
	loading := session.Loading()
	c.Response().Header().Set(domain.SearchSessionHeader, session.ID())

	// Only settled result sets are cacheable; while a remote fetch is
	// outstanding the response would bake in a transient loading state.
	cacheKey := searchCacheKey(session.ID(), query)
	if len(loading) == 0 && h.cache != nil {
		if item, err := h.cache.Get(cacheKey); err == nil {
			return c.JSONBlob(http.StatusOK, item.Value)
		}
	}

	resp := searchResponse{
		Session: session.ID(),
		Query:   query,
		Results: session.Query(query),
		Loading: loading,
	}

	if len(loading) == 0 && h.cache != nil {
		if blob, err := json.Marshal(resp); err == nil {
			// Best effort: a cache failure never fails the request.
			h.cache.Set(&memcache.Item{Key: cacheKey, Value: blob, Expiration: searchCacheTTL})
		}
	}

	return presenter.OK(c, resp)
}

func searchCacheKey(sessionID, query string) string {
	return fmt.Sprintf("search:%s:%x", sessionID, xxh3.HashString(query))
}

func (h *Handler) handleResolve(c echo.Context) error {
	var result folio.SearchResult
	err := c.Bind(&result)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	if result.ID == "" {
		return presenter.BadRequestMessage(c, "id is required")
	}

	return presenter.OK(c, search.Resolve(result))
}

func (h *Handler) handlePages(c echo.Context) error {
	return presenter.OK(c, content.Pages)
}

func (h *Handler) handleExperience(c echo.Context) error {
	return presenter.OK(c, content.Experiences)
}

func (h *Handler) handleEducation(c echo.Context) error {
	return presenter.OK(c, content.Education)
}

func (h *Handler) handlePoems(c echo.Context) error {
	return presenter.OK(c, content.Poems)
}

func (h *Handler) handleProjects(c echo.Context) error {
	ctx := c.Request().Context()

	repos, err := h.projects.List(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, repos)
}

func (h *Handler) handlePhotos(c echo.Context) error {
	ctx := c.Request().Context()

	photos, err := h.contents.ListPhotos(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, photos)
}

func (h *Handler) handleVideos(c echo.Context) error {
	ctx := c.Request().Context()

	videos, err := h.contents.ListVideos(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, videos)
}

func (h *Handler) handleWritings(c echo.Context) error {
	ctx := c.Request().Context()

	writings, err := h.contents.ListWritings(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, writings)
}

func (h *Handler) handleContact(c echo.Context) error {
	var msg folio.ContactMessage
	err := c.Bind(&msg)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return presenter.BadRequestMessage(c, "name, email and message are required")
	}

	err = h.mailer.SendContact(msg)
	if err != nil {
		slog.Error(
			"Contact mail delivery failed",
			slog.String("error", err.Error()),
			slog.String("module", "contact"),
		)
		return presenter.InternalError(c, fmt.Errorf("failed to send message"))
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	result, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			return presenter.Unauthorized(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, result)
}

func (h *Handler) handleLogout(c echo.Context) error {
	ctx := c.Request().Context()

	token := c.Request().Header.Get("authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		_ = h.auth.Logout(ctx, token[7:])
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenter.BadRequestMessage(c, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenter.InternalError(c, err)
	}
	defer file.Close()

	photo, err := h.contents.AddPhoto(ctx, usecase.PhotoUpload{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Location:    c.FormValue("location"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, photo)
}

func (h *Handler) handleDeletePhoto(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid id")
	}

	err = h.contents.DeletePhoto(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "photo not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddVideo(c echo.Context) error {
	ctx := c.Request().Context()

	var video folio.Video
	err := c.Bind(&video)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.contents.AddVideo(ctx, video)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, created)
}

func (h *Handler) handleDeleteVideo(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid id")
	}

	err = h.contents.DeleteVideo(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "video not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddWriting(c echo.Context) error {
	ctx := c.Request().Context()

	var writing folio.Writing
	err := c.Bind(&writing)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	created, err := h.contents.AddWriting(ctx, writing)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return presenter.OK(c, created)
}

func (h *Handler) handleDeleteWriting(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid id")
	}

	err = h.contents.DeleteWriting(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "writing not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type liveRequest struct {
	Type  string `json:"type"`
	Query string `json:"query,omitempty"`
}

// handleSearchLive serves a websocket search session: the client opens the
// overlay, streams query updates, and receives result pushes both for its
// own keystrokes and whenever a remote source resolves mid-session.
func (h *Handler) handleSearchLive(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	session := h.sessions.Get(c.QueryParam("session"))

	output := make(chan folio.Event, 8)

	// Snapshot changes fan out through redis so pushes reach the session
	// even when another replica completed the fetch.
	session.SetNotify(func(event folio.Event) {
		err := h.signal.Publish(context.WithoutCancel(ctx), event)
		if err != nil {
			slog.Error(
				"Failed to publish search event",
				slog.String("error", err.Error()),
				slog.String("module", "socket"),
			)
		}
	})
	defer session.SetNotify(nil)

	go h.signal.Subscribe(ctx, session.ID(), output)

	quit := make(chan struct{})

	go func() {
		for {
			var req liveRequest
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				quit <- struct{}{}
				break
			}

			switch req.Type {
			case "open":
				session.Open(ctx)
				output <- folio.Event{Type: "opened", Session: session.ID()}
			case "query":
				results := session.Query(req.Query)
				output <- folio.Event{
					Type:    "results",
					Session: session.ID(),
					Query:   req.Query,
					Results: results,
				}
			case "close":
				session.Close()
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}

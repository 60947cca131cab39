package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/labstack/echo/v4"

	"trumpduel/internal/app"
	"trumpduel/internal/bot"
	"trumpduel/internal/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades HTTP requests into duel sessions.
type Handler struct {
	Config config.GameConfig
	Logger runtime.Logger
}

// Register mounts the websocket and health routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	e.GET("/profiles", func(c echo.Context) error {
		return c.JSON(http.StatusOK, bot.Profiles())
	})
	e.GET("/ws", h.Serve)
}

// Serve runs one session for the lifetime of the connection. The optional
// "difficulty" query parameter overrides the configured level.
func (h *Handler) Serve(c echo.Context) error {
	level := bot.Level(h.Config.DefaultDifficulty)
	if q := c.QueryParam("difficulty"); q != "" {
		parsed, err := bot.ParseLevel(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		level = parsed
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.Logger.Warn("Failed to upgrade connection: %v", err)
		return nil
	}

	sess, err := NewSession(conn, app.Options{
		Pacing:     app.PacingFrom(h.Config.Pacing),
		Difficulty: level,
		LogLimit:   h.Config.LogLimit,
	}, h.Logger.WithField("remote", c.RealIP()))
	if err != nil {
		conn.Close()
		h.Logger.Error("Failed to start session: %v", err)
		return nil
	}
	if err := sess.Run(c.Request().Context()); err != nil {
		h.Logger.Warn("Session ended: %v", err)
	}
	return nil
}

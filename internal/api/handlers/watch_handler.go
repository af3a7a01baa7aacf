package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/types"
	"github.com/linskybing/support-tracker/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{CheckOrigin: checkOrigin}

// checkOrigin accepts non-browser clients, same-host pages and the configured
// CORS origins. The session travels in a cookie, so any other page is refused.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return slices.Contains(config.CORSOrigins, origin)
}

type WatchHandler struct {
	tickets  *application.TicketService
	interval time.Duration
}

func NewWatchHandler(tickets *application.TicketService, interval time.Duration) *WatchHandler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &WatchHandler{tickets: tickets, interval: interval}
}

// fingerprint changes whenever a watcher should receive a new snapshot.
type fingerprint struct {
	updatedAt time.Time
	replies   int
	tags      []uint
}

func fingerprintOf(t ticket.Ticket) fingerprint {
	fp := fingerprint{updatedAt: t.UpdatedAt, replies: len(t.Replies)}
	for _, tg := range t.Tags {
		fp.tags = append(fp.tags, tg.ID)
	}
	return fp
}

func (f fingerprint) equal(o fingerprint) bool {
	return f.updatedAt.Equal(o.updatedAt) && f.replies == o.replies && slices.Equal(f.tags, o.tags)
}

// Watch godoc
// @Summary Live view of a ticket
// @Description Upgrades to a WebSocket, sends the ticket and then a new snapshot whenever it changes.
// @Tags tickets
// @Param id path int true "Ticket ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 403 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tickets/{id}/watch [get]
func (h *WatchHandler) Watch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	identity := utils.GetIdentityFromContext(c)

	// Resolve access before upgrading so failures keep the JSON envelope.
	current, err := h.tickets.FindByID(c.Request.Context(), identity, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Reader: only drains control frames and notices the client leaving.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.stream(ctx, conn, identity, current)
}

func (h *WatchHandler) stream(ctx context.Context, conn *websocket.Conn, identity *types.Identity, current ticket.Ticket) {
	send := func(t ticket.Ticket) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(response.DataResponse{Data: t})
	}
	if err := send(current); err != nil {
		return
	}
	last := fingerprintOf(current)

	pollTicker := time.NewTicker(h.interval)
	defer pollTicker.Stop()
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-pollTicker.C:
			t, err := h.tickets.FindByID(ctx, identity, current.ID)
			if err != nil {
				if ctx.Err() == nil {
					msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error())
					_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
				}
				return
			}
			fp := fingerprintOf(t)
			if fp.equal(last) {
				continue
			}
			if err := send(t); err != nil {
				return
			}
			last = fp
		}
	}
}

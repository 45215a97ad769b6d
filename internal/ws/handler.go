package ws

import (
	"log"
	"net/http"
	"strings"

	"career-canvas/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	tokens jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, tokens jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleCompanyWS upgrades a recruiter dashboard connection. Browsers cannot
// set headers on a websocket handshake, so the token also rides in the
// `token` query parameter.
func (h *Handler) HandleCompanyWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	companyID, err := h.authorize(c)
	if err != nil {
		return err
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, companyID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authorize(c fiber.Ctx) (uuid.UUID, error) {
	token := c.Query("token")
	if token == "" {
		auth := c.Get("Authorization")
		if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
			token = strings.TrimSpace(after)
		}
	}
	if token == "" {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil || claims.PrincipalType != jwt.PrincipalCompany {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	companyID, err := uuid.Parse(claims.PrincipalID)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return companyID, nil
}

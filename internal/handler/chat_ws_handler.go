package handler

import (
	"context"
	"encoding/json"
	"os"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/service"
	internalWS "ai-bankassist-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ChatWsHandler upgrades chat websocket connections and bridges frames
// into the chat routing pipeline.
type ChatWsHandler struct {
	chatService service.IChatService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewChatWsHandler(chatService service.IChatService, hub *internalWS.Hub, log logger.ILogger) *ChatWsHandler {
	return &ChatWsHandler{
		chatService: chatService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer. A token is optional:
// the demo chat accepts anonymous sessions, which just lose the
// account-aware responses.
func (h *ChatWsHandler) ServeWs(c *fiber.Ctx) error {
	// Priority 1: Query Param (Browser standard)
	tokenStr := c.Query("token")

	// Priority 2: Authorization Header (Tooling/Non-browser standard)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	var userID uint
	var username string
	if tokenStr != "" {
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			h.logger.Warn("ChatWsHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
		}

		if rawID, ok := claims["user_id"].(float64); ok {
			userID = uint(rawID)
		}
		if name, ok := claims["username"].(string); ok {
			username = name
		}
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatWsHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID, h.onMessage(userID, username))
			h.logger.Info("ChatWsHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// onMessage builds the per-connection frame handler. Only chat frames are
// meaningful inbound; everything else gets an error frame back.
func (h *ChatWsHandler) onMessage(userID uint, username string) internalWS.MessageHandler {
	return func(client *internalWS.Client, env internalWS.Envelope) []byte {
		if env.Type != internalWS.TypeChat {
			return internalWS.ErrorFrame("unsupported message type: " + env.Type)
		}

		var req dto.ChatRequest
		if err := json.Unmarshal(env.Data, &req); err != nil || req.Message == "" {
			return internalWS.ErrorFrame("invalid chat payload")
		}

		res, err := h.chatService.ProcessMessage(context.Background(), userID, username, &req)
		if err != nil {
			h.logger.Error("ChatWsHandler", "Failed to process chat message", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
			return internalWS.ErrorFrame("failed to process message")
		}

		frame, err := internalWS.NewEnvelope(internalWS.TypeChatResponse, res)
		if err != nil {
			return internalWS.ErrorFrame("failed to encode response")
		}
		return frame
	}
}

// RegisterRoutes registers the websocket upgrade endpoint.
func (h *ChatWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/chat", h.ServeWs)
}

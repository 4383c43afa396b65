package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// OpenChat handles POST /chats/open
// @Summary Open a chat
// @Description Check eligibility and open (or return) the conversation
// @Tags chats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body chat.OpenChatRequest true "Target user"
// @Success 200 {object} chat.OpenChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} chat.OpenChatResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chats/open [post]
func (h *ChatHandler) OpenChat(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req chat.OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.chatUseCase.OpenChat(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotChatSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot open a chat with yourself",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to open chat",
			})
		}
		return
	}

	if !result.Eligibility.Allowed {
		c.JSON(http.StatusForbidden, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListConversations handles GET /chats
// @Summary List conversations
// @Tags chats
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string][]domain.Conversation
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chats [get]
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	convs, err := h.chatUseCase.ListConversations(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list conversations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

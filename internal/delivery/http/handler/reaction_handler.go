package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/usecase/reaction"
)

type ReactionHandler struct {
	reactionUseCase *reaction.ReactionUseCase
}

func NewReactionHandler(reactionUseCase *reaction.ReactionUseCase) *ReactionHandler {
	return &ReactionHandler{
		reactionUseCase: reactionUseCase,
	}
}

// Like handles POST /reactions/like
// @Summary Like a profile
// @Tags reactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reaction.ReactionRequest true "Target profile"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reactions/like [post]
func (h *ReactionHandler) Like(c *gin.Context) {
	h.react(c, h.reactionUseCase.Like)
}

// Pass handles POST /reactions/pass
// @Summary Pass on a profile
// @Description Passed profiles no longer show up in discovery
// @Tags reactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reaction.ReactionRequest true "Target profile"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reactions/pass [post]
func (h *ReactionHandler) Pass(c *gin.Context) {
	h.react(c, h.reactionUseCase.Pass)
}

// Unlike handles DELETE /reactions/like/:profile_id
// @Summary Remove a like
// @Tags reactions
// @Security BearerAuth
// @Produce json
// @Param profile_id path string true "Profile ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reactions/like/{profile_id} [delete]
func (h *ReactionHandler) Unlike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	if err := h.reactionUseCase.Unlike(c.Request.Context(), userID.(string), c.Param("profile_id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to remove like",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Likes handles GET /reactions/likes
// @Summary Liked profile ids
// @Tags reactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reactions/likes [get]
func (h *ReactionHandler) Likes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	ids, err := h.reactionUseCase.LikedIDs(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load likes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_ids": ids})
}

// ResetPasses handles POST /reactions/reset-passes
// @Summary Reset pass history
// @Description Clears every pass so passed profiles reappear in discovery
// @Tags reactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reactions/reset-passes [post]
func (h *ReactionHandler) ResetPasses(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	count, err := h.reactionUseCase.ResetPasses(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to reset passes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": count})
}

func (h *ReactionHandler) react(c *gin.Context, action func(ctx context.Context, viewerUserID, profileID string) error) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req reaction.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	if err := action(c.Request.Context(), userID.(string), req.ProfileID); err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		case errors.Is(err, domain.ErrCannotReactSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot react to your own profile",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to store reaction",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

package players

import (
	"context"
	"net/http"
	"strconv"

	"conspiracy/config"
	"conspiracy/services"
	"conspiracy/utils/logger"

	"github.com/gin-gonic/gin"
)

// PlayerQueries is the slice of the player service the handlers need.
type PlayerQueries interface {
	GetPoints(ctx context.Context, userID int64) (int, error)
	Status(ctx context.Context, userID int64) ([]services.ChallengeStatus, error)
}

// Handler serves the per-participant queries behind the chat menu.
type Handler struct {
	players PlayerQueries
}

func NewHandler(players PlayerQueries) *Handler {
	return &Handler{players: players}
}

// [GET] GetPoints
// @Summary Get a participant's points
// @Description Get the accumulated point total for a participant, 0 when the participant never scored
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} PointsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/points [get]
func (h *Handler) GetPoints(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	points, err := h.players.GetPoints(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("Failed to fetch points for user %d: %v", userID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchPoints)
		return
	}

	c.JSON(http.StatusOK, PointsResponse{UserID: userID, Points: points})
}

// [GET] GetStatus
// @Summary Get a participant's challenge status
// @Description List every challenge with its point value and whether the participant solved it, in registration order
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {array} services.ChallengeStatus
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	statuses, err := h.players.Status(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("Failed to fetch status for user %d: %v", userID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchStatus)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// [GET] GetMenu
// @Summary Get the bot menu
// @Description Fixed menu the chat layer renders in response to any direct message
// @Tags Players
// @Produce json
// @Success 200 {object} MenuResponse
// @Router /menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, MenuResponse{
		Message:        "Welcome to THE CONSPIRACY. Submit flags, check your points, or see challenge status.",
		Actions:        []string{"submit_flag", "check_points", "challenge_status"},
		LeaderboardURL: config.LeaderboardURL,
	})
}

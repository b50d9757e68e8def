package submissions

import (
	"context"
	"net/http"

	"conspiracy/realtime"
	"conspiracy/services"
	"conspiracy/utils/logger"

	"github.com/gin-gonic/gin"
)

// Submitter is the slice of the submission service the handler needs.
type Submitter interface {
	Submit(ctx context.Context, userID int64, rawText string) (services.SubmissionOutcome, error)
}

// Invalidator drops cached leaderboard reads after an accepted credit.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Handler serves the flag submission endpoint for the chat-interaction layer.
type Handler struct {
	submitter   Submitter
	leaderboard Invalidator
}

func NewHandler(submitter Submitter, leaderboard Invalidator) *Handler {
	return &Handler{submitter: submitter, leaderboard: leaderboard}
}

// [POST] SubmitFlag
// @Summary Submit a flag
// @Description Validate a submitted flag code and credit the participant at most once per flag
// @Tags Submissions
// @Accept json
// @Produce json
// @Param submitFlagRequest body SubmitFlagRequest true "Submit flag request"
// @Success 200 {object} services.SubmissionOutcome
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /submissions [post]
func (h *Handler) SubmitFlag(c *gin.Context) {
	// Step 1: Parse the request body
	var req SubmitFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 2: Run the submission through the processor
	outcome, err := h.submitter.Submit(c.Request.Context(), req.UserID, req.Flag)
	if err != nil {
		logger.Errorf("Submission failed for user %d: %v", req.UserID, err)
		respondWithError(c, http.StatusInternalServerError, ErrSubmissionFailed)
		return
	}

	// Step 3: On a credit, refresh leaderboard readers
	if outcome.Status == services.OutcomeAccepted {
		logger.Infof("User %d solved %q for %d points (total %d)",
			req.UserID, outcome.ChallengeName, outcome.PointsAwarded, outcome.TotalPoints)
		h.leaderboard.Invalidate(c.Request.Context())
		realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
			UserID:        req.UserID,
			ChallengeName: outcome.ChallengeName,
			PointsAwarded: outcome.PointsAwarded,
			TotalPoints:   outcome.TotalPoints,
		})
	}

	c.JSON(http.StatusOK, outcome)
}

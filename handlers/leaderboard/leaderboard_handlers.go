package leaderboard

import (
	"context"
	"net/http"
	"strconv"

	"conspiracy/models"
	"conspiracy/utils/logger"
	"conspiracy/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Ranking is the slice of the leaderboard service the handlers need.
type Ranking interface {
	TopN(ctx context.Context, n int) ([]models.UserPoints, error)
	ExportExcel(ctx context.Context, n int) (*excelize.File, error)
}

// Handler serves the read-only ranking views.
type Handler struct {
	ranking Ranking
}

func NewHandler(ranking Ranking) *Handler {
	return &Handler{ranking: ranking}
}

// [GET] GetLeaderboard
// @Summary Get the ranking
// @Description Get the top participants ordered by points descending, ties broken by ascending participant id
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Number of entries (default 20, max 100)"
// @Success 200 {array} Entry
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	entries, err := h.ranking.TopN(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to fetch leaderboard: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchRanking)
		return
	}

	c.JSON(http.StatusOK, toEntries(entries))
}

// [GET] ExportLeaderboard
// @Summary Export the ranking as an Excel workbook
// @Description Download the top participants as an xlsx file
// @Tags Leaderboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param limit query int false "Number of entries (default 20, max 100)"
// @Success 200 {file} file
// @Failure 500 {object} map[string]string
// @Router /leaderboard/export [get]
func (h *Handler) ExportLeaderboard(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	f, err := h.ranking.ExportExcel(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to export leaderboard: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Errorf("Failed to stream leaderboard export: %v", err)
	}
}

// [GET] Page renders the public ranking page as an HTML table.
func (h *Handler) Page(c *gin.Context) {
	entries, err := h.ranking.TopN(c.Request.Context(), defaultLimit)
	if err != nil {
		logger.Errorf("Failed to render leaderboard page: %v", err)
		c.String(http.StatusInternalServerError, ErrFailedFetchRanking)
		return
	}

	c.HTML(http.StatusOK, "leaderboard.html", gin.H{
		"Entries": toEntries(entries),
	})
}

func parseLimit(raw string) int {
	limit := defaultLimit
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

func toEntries(rows []models.UserPoints) []Entry {
	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, Entry{Rank: i + 1, UserID: row.UserID, Points: row.Points})
	}
	return entries
}

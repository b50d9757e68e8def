package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"conspiracy/metrics"
	"conspiracy/models"
	"conspiracy/utils/logger"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 10 * time.Second
)

// LeaderboardService serves the read-only ranking. When a Redis client is
// provided, TopN results are cached briefly and dropped on every accepted
// submission; with a nil client every read goes straight to the database.
type LeaderboardService struct {
	scores ScoreStore
	cache  *redis.Client
}

func NewLeaderboardService(scores ScoreStore, cache *redis.Client) *LeaderboardService {
	return &LeaderboardService{scores: scores, cache: cache}
}

// TopN returns the ranking, points descending, ties broken by ascending
// participant id.
func (s *LeaderboardService) TopN(ctx context.Context, n int) ([]models.UserPoints, error) {
	key := fmt.Sprintf("%s:%d", leaderboardCacheKey, n)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var entries []models.UserPoints
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				metrics.CacheHits.Inc()
				return entries, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	entries, err := s.scores.TopN(ctx, n)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Errorf("Failed to cache leaderboard: %v", err)
			}
		}
	}

	return entries, nil
}

// Invalidate drops all cached rankings. Called after every accepted
// submission so readers never see a stale total for longer than one request.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys, err := s.cache.Keys(ctx, leaderboardCacheKey+":*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		logger.Errorf("Failed to invalidate leaderboard cache: %v", err)
	}
}

// ExportExcel renders the top n ranking as an xlsx workbook.
func (s *LeaderboardService) ExportExcel(ctx context.Context, n int) (*excelize.File, error) {
	entries, err := s.TopN(ctx, n)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Leaderboard"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Rank", "Participant", "Points"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []interface{}{i + 1, entry.UserID, entry.Points}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}

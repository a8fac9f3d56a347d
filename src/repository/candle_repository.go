package repository

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orderdesk/src/database"
	"orderdesk/src/model"
)

// CandleRepository handles read/write operations for chart candles.
type CandleRepository struct {
	db *gorm.DB
}

// NewCandleRepository creates a new repository instance using the main database.
func NewCandleRepository() *CandleRepository {
	logger.WithField("component", "CandleRepository").
		Info("Creating new CandleRepository with MainDB")

	return &CandleRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *CandleRepository) WithDB(db *gorm.DB) *CandleRepository {
	return &CandleRepository{db: db}
}

// UpsertBatch inserts candles, updating the OHLCV columns when a bar for the
// same symbol and datetime already exists.
func (r *CandleRepository) UpsertBatch(ctx context.Context, candles []model.Candle) error {
	if len(candles) == 0 {
		return nil
	}

	logger.WithFields(map[string]interface{}{
		"repo":   "CandleRepository",
		"op":     "UpsertBatch",
		"count":  len(candles),
		"symbol": candles[0].Symbol,
	}).Debug("Upserting candle batch")

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "datetime"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&candles).Error
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "CandleRepository",
			"op":   "UpsertBatch",
		}).WithError(err).Error("Failed to upsert candles")

		return err
	}

	return nil
}

// FetchRecent returns up to limit candles for symbol no later than to,
// in ascending chronological order.
func (r *CandleRepository) FetchRecent(ctx context.Context, symbol string, to time.Time, limit int) ([]model.Candle, error) {
	if limit <= 0 {
		limit = 200
	}

	var rows []model.Candle
	err := r.db.WithContext(ctx).
		Where("symbol = ? AND datetime <= ?", symbol, to).
		Order("datetime DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// reverse to ascending chronological order for easier charting
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

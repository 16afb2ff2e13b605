package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockview_backend/internal/feature/candles/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CandleModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func day(t *testing.T, d int) time.Time {
	t.Helper()
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestCandleMySQL_UpsertBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCandleRepository(db)
	ctx := context.Background()

	candles := []entity.Candle{
		{Symbol: "IBM", Interval: "1day", Time: day(t, 1), Open: 100, High: 110, Low: 90, Close: 105, Volume: 1000},
		{Symbol: "IBM", Interval: "1day", Time: day(t, 2), Open: 105, High: 115, Low: 95, Close: 110, Volume: 1200},
	}
	require.NoError(t, repo.UpsertBatch(ctx, candles))

	var count int64
	require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// 同じキーで再Upsertしても行は増えず、価格が更新される
	candles[0].Close = 108
	require.NoError(t, repo.UpsertBatch(ctx, candles))

	require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var row CandleModel
	require.NoError(t, db.Where("symbol = ? AND time = ?", "IBM", day(t, 1)).First(&row).Error)
	assert.Equal(t, 108.0, row.Close)
}

func TestCandleMySQL_UpsertBatch_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	assert.NoError(t, repo.UpsertBatch(context.Background(), nil))
}

func TestCandleMySQL_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCandleRepository(db)
	ctx := context.Background()

	seed := []entity.Candle{
		{Symbol: "IBM", Interval: "1day", Time: day(t, 1), Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{Symbol: "IBM", Interval: "1day", Time: day(t, 2), Open: 2, High: 3, Low: 1.5, Close: 2.5},
		{Symbol: "IBM", Interval: "1day", Time: day(t, 3), Open: 3, High: 4, Low: 2.5, Close: 3.5},
		{Symbol: "IBM", Interval: "1week", Time: day(t, 1), Open: 9, High: 9, Low: 9, Close: 9},
		{Symbol: "AAPL", Interval: "1day", Time: day(t, 1), Open: 7, High: 7, Low: 7, Close: 7},
	}
	require.NoError(t, repo.UpsertBatch(ctx, seed))

	t.Run("filters by symbol and interval, newest first", func(t *testing.T) {
		got, err := repo.Find(ctx, "IBM", "1day", 0)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[0].Time.After(got[1].Time))
		assert.True(t, got[1].Time.After(got[2].Time))
		for _, c := range got {
			assert.Equal(t, "IBM", c.Symbol)
			assert.Equal(t, "1day", c.Interval)
		}
	})

	t.Run("respects outputsize limit", func(t *testing.T) {
		got, err := repo.Find(ctx, "IBM", "1day", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		// 新しい方から2件
		assert.Equal(t, day(t, 3), got[0].Time)
		assert.Equal(t, day(t, 2), got[1].Time)
	})

	t.Run("unknown symbol yields empty result", func(t *testing.T) {
		got, err := repo.Find(ctx, "NOPE", "1day", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

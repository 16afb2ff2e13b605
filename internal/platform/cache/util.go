package cache

import (
	"time"
)

// TimeUntilNextClose は次の米国市場の日次データ更新時刻（東部時間18時）までの
// 期間を返します。キャッシュのTTLとして使うことで、日足の更新後に必ず
// 新しいデータが読み直されるようにします。
func TimeUntilNextClose() time.Duration {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Now().In(loc)

	// 次の18時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, loc)

	// 今日の18時が既に過ぎている場合は明日の18時を使用
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}

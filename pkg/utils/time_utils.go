package utils

import "time"

// Korea Standard Time (KST, +09:00). Session timestamps and the per-day like
// dedup key are both anchored to this zone.
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

func NowKST() time.Time { return time.Now().In(kstLoc) }

// TodayKST returns the current calendar day in KST as "2006-01-02".
func TodayKST() string { return NowKST().Format("2006-01-02") }

// DayKST reduces an instant to its KST calendar day string.
func DayKST(t time.Time) string { return t.In(kstLoc).Format("2006-01-02") }

func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(time.RFC3339)
}

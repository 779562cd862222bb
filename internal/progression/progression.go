// Package progression derives trader levels from accumulated experience points.
package progression

// XP awarded for qualifying marketplace actions
const (
	XPListing = 30
	XPBid     = 10
	XPWin     = 50
)

// Tier upper bounds (inclusive)
const (
	NoviceMaxXP   = 100
	MerchantMaxXP = 400
)

// LevelInfo is derived from xp alone and never persisted
type LevelInfo struct {
	Level           int     `json:"level"`
	Title           string  `json:"title"`
	NextThreshold   int     `json:"next_threshold"` // 0 at the top tier
	ProgressPercent float64 `json:"progress_percent"`
}

// GetLevelInfo maps an xp total onto the fixed three-tier table
func GetLevelInfo(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	switch {
	case xp <= NoviceMaxXP:
		return LevelInfo{
			Level:           1,
			Title:           "보따리 상인",
			NextThreshold:   NoviceMaxXP,
			ProgressPercent: float64(xp) / NoviceMaxXP * 100,
		}
	case xp <= MerchantMaxXP:
		return LevelInfo{
			Level:           2,
			Title:           "거상",
			NextThreshold:   MerchantMaxXP,
			ProgressPercent: float64(xp-NoviceMaxXP) / (MerchantMaxXP - NoviceMaxXP) * 100,
		}
	default:
		return LevelInfo{
			Level:           3,
			Title:           "도깨비 상인",
			NextThreshold:   0,
			ProgressPercent: 100,
		}
	}
}

// ApplyXP adds amount to xp, clamping the result at zero
func ApplyXP(xp, amount int) int {
	next := xp + amount
	if next < 0 {
		return 0
	}
	return next
}

package lixi

// Tier classifies a prize amount for display.
type Tier int

const (
	TierChucMung Tier = iota // Default tier
	TierTuyetVoi             // >= 30,000
	TierMayMan               // >= 60,000
	TierDaiLoc               // >= 100,000
)

// tierThresholds is checked in order, highest first.
var tierThresholds = []struct {
	min  int
	tier Tier
}{
	{100_000, TierDaiLoc},
	{60_000, TierMayMan},
	{30_000, TierTuyetVoi},
}

// Classify returns the tier of amount.
func Classify(amount int) Tier {
	for _, t := range tierThresholds {
		if amount >= t.min {
			return t.tier
		}
	}
	return TierChucMung
}

func (t Tier) String() string {
	switch t {
	case TierDaiLoc:
		return "Đại Lộc"
	case TierMayMan:
		return "May mắn"
	case TierTuyetVoi:
		return "Tuyệt vời"
	default:
		return "Chúc mừng"
	}
}

// Message is the greeting shown above the amount in the result popup.
func (t Tier) Message() string {
	switch t {
	case TierDaiLoc:
		return "🎉 Đại Lộc!"
	case TierMayMan:
		return "✨ May mắn!"
	case TierTuyetVoi:
		return "🧧 Tuyệt vời!"
	default:
		return "🧧 Chúc mừng!"
	}
}

// Color is the CSS class used to paint the amount.
func (t Tier) Color() string {
	switch t {
	case TierDaiLoc:
		return "text-yellow-400"
	case TierMayMan:
		return "text-orange-400"
	case TierTuyetVoi:
		return "text-green-400"
	default:
		return "text-white"
	}
}

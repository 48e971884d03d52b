package lixi

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		amount int
		want   Tier
	}{
		{10_000, TierChucMung},
		{29_999, TierChucMung},
		{30_000, TierTuyetVoi},
		{59_999, TierTuyetVoi},
		{60_000, TierMayMan},
		{99_999, TierMayMan},
		{100_000, TierDaiLoc},
		{1_000_000, TierDaiLoc},
	} {
		t.Run(fmt.Sprintf("%d", tc.amount), func(t *testing.T) {
			if got := Classify(tc.amount); got != tc.want {
				t.Errorf("Classify(%d) = %s, want %s", tc.amount, got, tc.want)
			}
		})
	}
}

func TestTierLabels(t *testing.T) {
	tiers := []Tier{TierChucMung, TierTuyetVoi, TierMayMan, TierDaiLoc}
	messages := make(map[string]bool)
	colors := make(map[string]bool)
	for _, tier := range tiers {
		messages[tier.Message()] = true
		colors[tier.Color()] = true
	}
	if len(messages) != len(tiers) || len(colors) != len(tiers) {
		t.Errorf("Each tier needs its own message and color: %v %v", messages, colors)
	}
	if got := Classify(100_000).Message(); got != "🎉 Đại Lộc!" {
		t.Errorf("Unexpected message %q", got)
	}
	if got := Classify(10_000).Color(); got != "text-white" {
		t.Errorf("Unexpected color %q", got)
	}
}

func TestIsBigWin(t *testing.T) {
	if IsBigWin(59_999) {
		t.Errorf("59,999 is not a big win")
	}
	if !IsBigWin(60_000) || !IsBigWin(100_000) {
		t.Errorf("60,000 and above are big wins")
	}
}

func TestFormatMoney(t *testing.T) {
	for amount, want := range map[int]string{
		10_000:  "10.000đ",
		100_000: "100.000đ",
		500:     "500đ",
	} {
		if got := FormatMoney(amount); got != want {
			t.Errorf("FormatMoney(%d) = %q, want %q", amount, got, want)
		}
	}
}

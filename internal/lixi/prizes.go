package lixi

import (
	"cmp"
	"slices"
)

// GridSize is the number of envelopes per row (and per column) of the board.
const GridSize = 4

// NumEnvelopes is the number of envelopes on a board.
const NumEnvelopes = GridSize * GridSize

// BigWinThreshold is the smallest amount that triggers the confetti effect.
const BigWinThreshold = 60_000

// prizeAmounts is the fixed distribution handed out on every board.
var prizeAmounts = [NumEnvelopes]int{
	10_000, 10_000, 10_000, 10_000, 10_000, // 5 x 10k
	20_000, 20_000, 20_000, 20_000, // 4 x 20k
	30_000, 30_000, 30_000, // 3 x 30k
	60_000, 60_000, // 2 x 60k
	100_000, 100_000, // 2 x 100k
}

// PrizeAmounts returns a copy of the fixed prize distribution, in its canonical order.
func PrizeAmounts() []int {
	amounts := make([]int, len(prizeAmounts))
	copy(amounts, prizeAmounts[:])
	return amounts
}

// IsBigWin reports whether amount deserves a celebration.
func IsBigWin(amount int) bool {
	return amount >= BigWinThreshold
}

// PrizeCount is the number of envelopes holding a given amount.
type PrizeCount struct {
	Amount int
	Count  int
}

// Distribution summarizes the prize amounts, largest amount first.
func Distribution() []PrizeCount {
	var counts []PrizeCount
	for _, amount := range prizeAmounts {
		i := slices.IndexFunc(counts, func(pc PrizeCount) bool { return pc.Amount == amount })
		if i < 0 {
			counts = append(counts, PrizeCount{Amount: amount})
			i = len(counts) - 1
		}
		counts[i].Count++
	}
	slices.SortFunc(counts, func(a, b PrizeCount) int { return cmp.Compare(b.Amount, a.Amount) })
	return counts
}

// Package stats derives summary metrics from a block detail payload. All
// functions are pure and total: missing data contributes zero instead of an
// error.
package stats

import "github.com/blockpulse/blockpulse-backend/internal/model"

// targetBlockIntervalSeconds is the assumed spacing between blocks. Dividing
// difficulty by it gives a rough hash-rate figure, not a cryptographically
// accurate estimate.
const targetBlockIntervalSeconds = 600

// AverageFee returns the mean transaction fee in satoshis, 0 for empty blocks.
func AverageFee(detail model.BlockDetail) float64 {
	if len(detail.Transactions) == 0 {
		return 0
	}

	var sum int64
	for _, tx := range detail.Transactions {
		sum += tx.Fee
	}
	return float64(sum) / float64(len(detail.Transactions))
}

// TotalVolume sums every output value across the block's transactions.
func TotalVolume(detail model.BlockDetail) float64 {
	var total float64
	for _, tx := range detail.Transactions {
		for _, out := range tx.Outputs {
			total += out.Value
		}
	}
	return total
}

// HashRate approximates the network hash rate as difficulty over the target
// block interval. Zero difficulty yields zero.
func HashRate(detail model.BlockDetail) float64 {
	return detail.Difficulty / targetBlockIntervalSeconds
}

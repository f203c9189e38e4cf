package model

// RecentTransactionLimit caps the recent_transactions projection on a BlockRecord.
const RecentTransactionLimit = 5

// BlockAnnouncement is the minimal feed event signaling a new block. It is
// ephemeral and never persisted directly.
type BlockAnnouncement struct {
	Height int64
	Hash   string
}

// DetailOutput is a single transaction output inside a block detail payload.
type DetailOutput struct {
	Value float64
}

// DetailTransaction is a single transaction inside a block detail payload.
// Fee is denominated in satoshis.
type DetailTransaction struct {
	Hash    string
	Fee     int64
	Outputs []DetailOutput
}

// BlockDetail is the full per-block payload fetched for one announcement.
// Transient: only used to derive a BlockRecord.
type BlockDetail struct {
	Hash         string
	TxCount      int64
	Transactions []DetailTransaction
	Difficulty   float64
}

// MarketSnapshot holds current market data. There is no timestamp; the
// snapshot is treated as "now" at fetch time.
type MarketSnapshot struct {
	PriceUSD         float64
	TradingVolume24h float64
}

// MempoolSnapshot holds the pending transaction count at fetch time.
type MempoolSnapshot struct {
	PendingCount int64
}

// RecentTransaction is one entry of a BlockRecord's recent_transactions blob.
type RecentTransaction struct {
	Hash string `json:"hash"`
	Fee  int64  `json:"fee"`
}

// BlockRecord is the persisted entity, at most one row per block height.
// A later write for the same height replaces every field.
type BlockRecord struct {
	BlockHeight        int64               `json:"block_height"`
	TransactionCount   int32               `json:"transaction_count"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
	AverageFee         float64             `json:"average_fee"`
	TotalVolume        float64             `json:"total_volume"`
	Difficulty         float64             `json:"difficulty"`
	HashRate           float64             `json:"hash_rate"`
	MarketPrice        float64             `json:"market_price"`
	TradingVolume24h   float64             `json:"trading_volume_24h"`
	ActiveAddresses24h int64               `json:"active_addresses_24h"`
	MempoolSize        int64               `json:"mempool_size"`
}

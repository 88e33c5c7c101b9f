package types

import "time"

// BlockHeader references a block in the active chain.
type BlockHeader struct {
	Height Height
	Hash   Hash32
	Time   time.Time
}

// Block is a block with the transactions relevant for reward assessment.
type Block struct {
	BlockHeader
	Txs []*Transaction
}

// Transaction carries the fields of a chain transaction consumed by the engine.
// CoinAge, Tithe and AntiBotNet are precomputed by the chain indexer.
type Transaction struct {
	ID Hash32
	// GSCTransmission is set for transactions broadcast by the campaign wallet.
	GSCTransmission bool
	// Message is the structured memo embedded in the transaction outputs.
	Message    string
	CoinAge    float64
	Tithe      Amount
	AntiBotNet bool
}

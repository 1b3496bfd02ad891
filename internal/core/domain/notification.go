package domain

// Notification carries the values announced to the listening pool service:
// a coin identifier and the hash of a freshly found block. Both are opaque
// strings supplied by the invoking daemon; no format is imposed on them.
type Notification struct {
	coin      string
	blockHash string
}

// NewNotification is a simple constructor for the Notification entity.
func NewNotification(coin, blockHash string) Notification {
	return Notification{
		coin:      coin,
		blockHash: blockHash,
	}
}

// Coin returns the coin identifier.
func (n Notification) Coin() string {
	return n.coin
}

// BlockHash returns the block hash.
func (n Notification) BlockHash() string {
	return n.blockHash
}

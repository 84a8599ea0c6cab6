package ledger

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Transaction ID prefixes, one per transaction type.
const (
	prefixPurchase = "PUR"
	prefixSale     = "INV"
	prefixBuyback  = "BB"
)

// newTransactionID builds the human-readable transaction IDs downstream
// consumers expect: <prefix>-<last 4 of epoch ms><4-digit random>.
func newTransactionID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("%s-%s%d", prefix, ts[len(ts)-4:], 1000+rand.Intn(9000))
}

// newEpochID is the plain form used for products (P-), customers (c-) and
// price snapshots (SNP-).
func newEpochID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

func newNotificationID() string {
	return fmt.Sprintf("NOT-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

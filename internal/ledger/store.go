// Package ledger holds the in-memory state of the shop (catalog, serialized
// items, transactions, price snapshots, customers, notifications) behind one
// mutation API. State is constructed once at startup and injected into the
// HTTP handlers; nothing persists across restarts.
package ledger

import (
	"strings"
	"sync"
	"time"

	"goldshop-backend/internal/audit"
	"goldshop-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Ledger struct {
	mu    sync.RWMutex
	log   *logrus.Logger
	trail *audit.Trail

	products      []models.Product
	items         []models.Item
	customers     []models.Customer
	transactions  []models.Transaction // newest first
	snapshots     []models.PriceSnapshot
	notifications []models.SystemNotification // newest first

	// Live spot rates, rials per gram, manually maintained.
	spotGold   decimal.Decimal
	spotSilver decimal.Decimal
}

func New(log *logrus.Logger, trail *audit.Trail, spotGold, spotSilver decimal.Decimal) *Ledger {
	return &Ledger{
		log:        log,
		trail:      trail,
		spotGold:   spotGold,
		spotSilver: spotSilver,
	}
}

// Load bulk-inserts pre-existing records (demo seed, test fixtures) without
// transaction side effects.
func (l *Ledger) Load(products []models.Product, customers []models.Customer, items []models.Item, transactions []models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = append(l.products, products...)
	l.customers = append(l.customers, customers...)
	l.items = append(l.items, items...)
	l.transactions = append(transactions, l.transactions...)
}

// --- Read views (copies, safe to hand to handlers) ---

func (l *Ledger) Products() []models.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Product, len(l.products))
	copy(out, l.products)
	return out
}

func (l *Ledger) ProductByID(id string) (models.Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.productByID(id)
}

func (l *Ledger) Items() []models.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) ItemBySerial(serial string) (models.Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if it := l.itemBySerial(serial); it != nil {
		return *it, true
	}
	return models.Item{}, false
}

func (l *Ledger) Customers() []models.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Customer, len(l.customers))
	copy(out, l.customers)
	return out
}

func (l *Ledger) CustomerByID(id string) (models.Customer, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.customerByID(id)
}

// Transactions returns the ledger newest first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

func (l *Ledger) TransactionByID(id string) (models.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func (l *Ledger) Snapshots() []models.PriceSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.PriceSnapshot, len(l.snapshots))
	copy(out, l.snapshots)
	return out
}

// Notifications returns the message list newest first.
func (l *Ledger) Notifications() []models.SystemNotification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.SystemNotification, len(l.notifications))
	copy(out, l.notifications)
	return out
}

func (l *Ledger) SpotPrices() (gold, silver decimal.Decimal) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.spotGold, l.spotSilver
}

func (l *Ledger) SetSpotPrices(gold, silver decimal.Decimal) {
	l.mu.Lock()
	l.spotGold = gold
	l.spotSilver = silver
	l.mu.Unlock()
	l.log.WithFields(logrus.Fields{
		"spot_gold":   gold.String(),
		"spot_silver": silver.String(),
	}).Info("spot prices updated")
}

func (l *Ledger) ClearNotifications() {
	l.mu.Lock()
	l.notifications = nil
	l.mu.Unlock()
}

// --- Locked helpers ---

func (l *Ledger) productByID(id string) (models.Product, bool) {
	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (l *Ledger) customerByID(id string) (models.Customer, bool) {
	for _, c := range l.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (l *Ledger) itemBySerial(serial string) *models.Item {
	for i := range l.items {
		if l.items[i].SerialNumber == serial {
			return &l.items[i]
		}
	}
	return nil
}

func (l *Ledger) prependTransaction(tx models.Transaction) {
	l.transactions = append([]models.Transaction{tx}, l.transactions...)
}

func (l *Ledger) snapshot(txID string, now time.Time) {
	l.snapshots = append(l.snapshots, models.PriceSnapshot{
		ID:            newEpochID("SNP"),
		TransactionID: txID,
		Date:          now,
		GoldPrice:     l.spotGold,
		SilverPrice:   l.spotSilver,
		Source:        models.SnapshotManual,
	})
}

func (l *Ledger) notify(kind models.NotificationType, message string) {
	l.notifications = append([]models.SystemNotification{{
		ID:      newNotificationID(),
		Type:    kind,
		Message: message,
		Date:    time.Now(),
		Read:    false,
	}}, l.notifications...)
}

// cleanSerials trims whitespace and drops empty entries, keeping order.
func cleanSerials(serials []string) []string {
	out := make([]string, 0, len(serials))
	for _, s := range serials {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

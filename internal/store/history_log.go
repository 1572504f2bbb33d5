package store

import (
	"sync"

	"la-carta/pkg/models"
)

// HistoryLog is the append-only record of archived orders across days. In
// memory it only ever grows; on disk it is rewritten whole on each append.
type HistoryLog struct {
	mu      sync.Mutex
	path    string
	records []models.Order
}

// OpenHistoryLog loads the history file, creating it empty when absent.
func OpenHistoryLog(path string) (*HistoryLog, error) {
	records, err := loadOrInit[models.Order](path)
	if err != nil {
		return nil, err
	}
	return &HistoryLog{path: path, records: records}, nil
}

func (l *HistoryLog) Records() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Order, len(l.records))
	copy(out, l.records)
	return out
}

func (l *HistoryLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Append adds the orders to the log and persists it. The in-memory append
// survives a failed write; the caller logs the error and the next append
// retries the whole file.
func (l *HistoryLog) Append(orders []models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, orders...)
	return writeJSON(l.path, l.records)
}

package orders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

// FileStore is the local JSON fallback for orders when the primary database
// is unreachable. Writes are read-modify-rewrite under a process-local mutex,
// so the single-writer guarantee only holds within one process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) load() ([]models.Order, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("reading fallback file: %w", err)
	}
	if len(raw) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decoding fallback file: %w", err)
	}
	return orders, nil
}

func (f *FileStore) write(orders []models.Order) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating fallback dir: %w", err)
		}
	}
	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding fallback file: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing fallback file: %w", err)
	}
	return nil
}

// Create prepends the order so the file stays newest first.
func (f *FileStore) Create(order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	orders, err := f.load()
	if err != nil {
		return err
	}
	orders = append([]models.Order{*order}, orders...)
	return f.write(orders)
}

// List returns all fallback orders, newest first.
func (f *FileStore) List() ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// UpdateStatus mutates one record in place. The second return reports whether
// the order existed in the file.
func (f *FileStore) UpdateStatus(orderID string, status enums.OrderStatus) (*models.Order, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	orders, err := f.load()
	if err != nil {
		return nil, false, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := f.write(orders); err != nil {
				return nil, false, err
			}
			updated := orders[i]
			return &updated, true, nil
		}
	}
	return nil, false, nil
}

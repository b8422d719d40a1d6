// Package store owns the item collection and mirrors it to a persistence slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/erazemk/reciklaza/internal/describe"
	"github.com/erazemk/reciklaza/internal/filter"
	"github.com/erazemk/reciklaza/internal/ident"
	"github.com/erazemk/reciklaza/internal/model"
	"github.com/erazemk/reciklaza/internal/notify"
	"github.com/erazemk/reciklaza/internal/qr"
	"github.com/erazemk/reciklaza/internal/slot"
)

var (
	// ErrNotPersisted wraps save failures. The in-memory change was applied.
	ErrNotPersisted = errors.New("change not persisted")

	// ErrInvalidStatus is returned for statuses outside the lifecycle.
	ErrInvalidStatus = errors.New("invalid status")
)

// Options customizes how new items are built. Zero fields use defaults.
type Options struct {
	QR    qr.Builder
	NewID func() string
	Now   func() time.Time
}

// Store is the authoritative item collection for the running process.
// Items are kept newest first. All operations are serialized; mutations
// are saved before the lock is released, so saves never overlap.
type Store struct {
	mu     sync.Mutex
	items  []model.Item
	slot   slot.Slot
	notify notify.Notifier
	qr     qr.Builder
	newID  func() string
	now    func() time.Time
}

// New returns an empty store backed by s. Call Load to read persisted items.
func New(s slot.Slot, n notify.Notifier, opts Options) *Store {
	if n == nil {
		n = notify.Discard
	}
	if opts.NewID == nil {
		opts.NewID = ident.New
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		slot:   s,
		notify: n,
		qr:     opts.QR,
		newID:  opts.NewID,
		now:    opts.Now,
	}
}

// Load reads the persisted collection and makes it the current one. A
// missing slot yields no items. Unreadable or malformed data also yields no
// items and emits an error notice; it is never returned to the caller.
func (s *Store) Load(ctx context.Context) []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		s.emit(notify.SeverityError, "Error", "Failed to load items")
		items = nil
	}
	s.items = items
	return cloneItems(items)
}

func (s *Store) read(ctx context.Context) ([]model.Item, error) {
	data, err := s.slot.Load(ctx)
	if errors.Is(err, slot.ErrEmpty) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	return items, nil
}

// Save serializes items and overwrites the slot with them.
func (s *Store) Save(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("saving items: %w", err)
	}
	return nil
}

// persist saves the current collection. Must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	if err := s.Save(ctx, s.items); err != nil {
		s.emit(notify.SeverityError, "Error", "Failed to save items")
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

func (s *Store) emit(sev notify.Severity, title, description string) {
	s.notify.Notify(notify.Notice{
		Title:       title,
		Description: description,
		Severity:    sev,
		Time:        s.now(),
	})
}

// Items returns a copy of the current collection, newest first.
func (s *Store) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// CountByStatus returns the number of items in each status without copying
// the collection.
func (s *Store) CountByStatus() map[model.Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.CountByStatus(s.items)
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i].Clone(), true
}

// Create adds a new pending item at the front of the collection.
func (s *Store) Create(ctx context.Context) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	item := model.Item{
		ID:        id,
		QRCode:    s.qr.Reference(id),
		Timestamp: model.FormatTimestamp(s.now()),
		Status:    model.StatusPending,
	}
	s.items = slices.Insert(s.items, 0, item)

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Item Created", "New item has been created with a QR code")
	return item.Clone(), err
}

// Update merges patch into the item with the given id. It reports false
// and does nothing if no such item exists.
func (s *Store) Update(ctx context.Context, id string, patch model.ItemPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.items[i] = s.items[i].Apply(patch)

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Item Updated", "Item details have been updated")
	return true, err
}

// UpdateStatus moves the item with the given id to status.
func (s *Store) UpdateStatus(ctx context.Context, id string, status model.Status) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.items[i].Status = status

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Status Updated", fmt.Sprintf("Item marked as %s", status))
	return true, err
}

// Delete removes the item with the given id permanently.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.items = slices.Delete(s.items, i, i+1)

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Item Deleted", "Item has been removed")
	return true, err
}

// GenerateDescription writes the synthesized description into the item and
// returns it.
func (s *Store) GenerateDescription(ctx context.Context, id string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return "", false, nil
	}
	desc := describe.Item(s.items[i])
	s.items[i] = s.items[i].Apply(model.ItemPatch{Description: model.Some(desc)})

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Item Updated", "Item details have been updated")
	return desc, true, err
}

// AddImage appends an image reference to the item.
func (s *Store) AddImage(ctx context.Context, id, image string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	images := append(slices.Clone(s.items[i].Images), image)
	s.items[i] = s.items[i].Apply(model.ItemPatch{Images: model.Some(images)})

	err := s.persist(ctx)
	s.emit(notify.SeverityInfo, "Item Updated", "Item details have been updated")
	return true, err
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

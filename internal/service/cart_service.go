package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ecoezer/byaliundmesut/internal/domain"
	"github.com/ecoezer/byaliundmesut/internal/repository"
)

// CartService owns the ordered collection of order lines. Lines are keyed
// by menu item id plus the full configuration tuple: adding an identical
// configuration bumps the quantity, any difference starts a new line at the
// end of the collection. The persisted cart is restored lazily on first
// access; every mutation is written through the repository before the call
// returns.
type CartService struct {
	mu     sync.Mutex
	lines  []domain.OrderLine
	loaded bool
	subs   []func(domain.CartSnapshot)

	repo repository.CartRepository
	log  *zap.Logger
	sfg  singleflight.Group // guards concurrent initial loads
}

func NewCartService(repo repository.CartRepository, log *zap.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

// Load restores the persisted cart. A missing or unreadable cart file is
// not an error: the cart starts empty and the problem is logged.
func (s *CartService) Load(ctx context.Context) error {
	return s.ensureLoaded(ctx)
}

// ensureLoaded restores the cart on the first access from any path.
// Concurrent first accesses share one repository read via singleflight.
func (s *CartService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}

	_, err, _ := s.sfg.Do("load", func() (interface{}, error) {
		s.mu.Lock()
		if s.loaded {
			s.mu.Unlock()
			return nil, nil
		}
		s.mu.Unlock()

		lines, err := s.repo.Load(ctx)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			s.log.Warn("cart restore failed, starting empty", zap.Error(err))
			lines = nil
		}

		s.mu.Lock()
		s.lines = lines
		s.loaded = true
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// AddItem merges into the line matching the configuration, or appends a new
// line with quantity 1. Whether the menu item reference is valid is the
// caller's concern.
func (s *CartService) AddItem(ctx context.Context, item domain.MenuItem, opts domain.LineOptions) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	key := domain.LineKey(item.ID, opts)
	found := false
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, domain.OrderLine{
			MenuItem:            item,
			Quantity:            1,
			SelectedSize:        opts.Size,
			SelectedIngredients: opts.Ingredients,
			SelectedExtras:      opts.Extras,
			SelectedPastaType:   opts.PastaType,
			SelectedSauce:       opts.Sauce,
		})
	}
	return s.persistAndNotifyLocked(ctx)
}

// RemoveItem deletes the line matching id and the full configuration.
// No-op when nothing matches.
func (s *CartService) RemoveItem(ctx context.Context, menuItemID int, opts domain.LineOptions) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	key := domain.LineKey(menuItemID, opts)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persistAndNotifyLocked(ctx)
		}
	}
	s.mu.Unlock()
	return nil
}

// UpdateQuantity sets the matching line's quantity; zero or less removes
// the line. No-op when nothing matches.
func (s *CartService) UpdateQuantity(ctx context.Context, menuItemID, quantity int, opts domain.LineOptions) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, menuItemID, opts)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	key := domain.LineKey(menuItemID, opts)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity = quantity
			return s.persistAndNotifyLocked(ctx)
		}
	}
	s.mu.Unlock()
	return nil
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.lines = nil
	return s.persistAndNotifyLocked(ctx)
}

// Lines returns a copy of the current line collection in insertion order.
// Reads restore the persisted cart too; a failed restore degrades to empty.
func (s *CartService) Lines() []domain.OrderLine {
	_ = s.ensureLoaded(context.Background())
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OrderLine(nil), s.lines...)
}

// TotalItems is the summed quantity over all lines, for badge display.
func (s *CartService) TotalItems() int {
	_ = s.ensureLoaded(context.Background())
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

func (s *CartService) Snapshot() domain.CartSnapshot {
	_ = s.ensureLoaded(context.Background())
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked with a snapshot after every
// mutation.
func (s *CartService) Subscribe(fn func(domain.CartSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// persistAndNotifyLocked is called with the mutex held and releases it.
func (s *CartService) persistAndNotifyLocked(ctx context.Context) error {
	lines := append([]domain.OrderLine(nil), s.lines...)
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	if err := s.repo.Save(ctx, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	for _, fn := range subs {
		fn(snap)
	}
	return nil
}

func (s *CartService) snapshotLocked() domain.CartSnapshot {
	return domain.CartSnapshot{
		Lines:      append([]domain.OrderLine(nil), s.lines...),
		TotalItems: totalItems(s.lines),
	}
}

func totalItems(lines []domain.OrderLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

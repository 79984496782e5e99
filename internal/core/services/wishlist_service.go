package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/core/ports"
)

var ErrWishlistClosed = errors.New("wishlist service closed")

type WishlistState int

const (
	WishlistUninitialized WishlistState = iota
	WishlistLoading
	WishlistReady
	WishlistLoadFailed
)

func (s WishlistState) String() string {
	switch s {
	case WishlistLoading:
		return "loading"
	case WishlistReady:
		return "ready"
	case WishlistLoadFailed:
		return "load_failed"
	default:
		return "uninitialized"
	}
}

// saveJob is one queued snapshot. result, when set, receives the outcome of
// this job's write.
type saveJob struct {
	seq    uint64
	items  []domain.Attraction
	result chan error
}

// WishlistService owns the in-memory wishlist. Mutations return immediately;
// each one queues a snapshot that a single background worker writes to the
// store in mutation order.
type WishlistService struct {
	store  ports.WishlistStore
	logger *zap.Logger

	mu      sync.RWMutex
	items   []domain.Attraction
	lastErr *domain.AppError
	state   WishlistState

	queueMu   sync.Mutex
	queue     []saveJob
	enqueued  uint64
	applied   uint64
	appliedCh chan struct{}
	wake      chan struct{}

	storeMu sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWishlistService starts the save worker and loads the persisted wishlist.
// A failed load leaves the service usable in the WishlistLoadFailed state.
func NewWishlistService(ctx context.Context, store ports.WishlistStore, logger *zap.Logger) *WishlistService {
	if logger == nil {
		logger = zap.NewNop()
	}

	workerCtx, cancel := context.WithCancel(context.Background())

	s := &WishlistService{
		store:     store,
		logger:    logger,
		items:     []domain.Attraction{},
		state:     WishlistUninitialized,
		appliedCh: make(chan struct{}),
		wake:      make(chan struct{}, 1),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go s.runSaveWorker(workerCtx)

	_ = s.LoadWishlist(ctx)

	return s
}

func (s *WishlistService) Items() []domain.Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAttractions(s.items)
}

func (s *WishlistService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *WishlistService) State() WishlistState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// LastError is the most recent load or save failure, or nil.
func (s *WishlistService) LastError() *domain.AppError {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

func (s *WishlistService) IsInWishlist(attraction domain.Attraction) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(attraction.ID) >= 0
}

func (s *WishlistService) AddToWishlist(attraction domain.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(attraction.ID) >= 0 {
		return
	}

	s.items = append(s.items, attraction)
	s.enqueueSaveLocked(nil)
}

func (s *WishlistService) RemoveFromWishlist(attraction domain.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(attraction.ID)
	if idx < 0 {
		return
	}

	s.removeAt(idx)
	s.enqueueSaveLocked(nil)
}

// ToggleWishlist removes attraction if present, otherwise appends it, and
// reports whether it is in the wishlist afterwards.
func (s *WishlistService) ToggleWishlist(attraction domain.Attraction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := false
	if idx := s.indexOf(attraction.ID); idx >= 0 {
		s.removeAt(idx)
	} else {
		s.items = append(s.items, attraction)
		added = true
	}

	s.enqueueSaveLocked(nil)

	return added
}

// LoadWishlist waits for queued saves, then replaces the in-memory list with
// the stored one. On failure the list is left as it was and LastError is set.
func (s *WishlistService) LoadWishlist(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = WishlistLoading
	s.mu.Unlock()

	s.storeMu.Lock()
	items, err := s.store.Load(ctx)
	s.storeMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		appErr := domain.AsAppError(err)
		s.lastErr = appErr
		s.state = WishlistLoadFailed
		s.logger.Warn("Failed to load wishlist", zap.Error(appErr))
		return appErr
	}

	unique := uniqueByID(items)
	if dropped := len(items) - len(unique); dropped > 0 {
		s.logger.Warn("Dropped duplicate wishlist entries", zap.Int("dropped", dropped))
	}

	s.items = unique
	s.lastErr = nil
	s.state = WishlistReady
	s.logger.Info("Loaded wishlist", zap.Int("count", len(unique)))

	return nil
}

// SaveWishlist queues the current list and waits until it has been written.
func (s *WishlistService) SaveWishlist(ctx context.Context) error {
	result := make(chan error, 1)

	s.mu.Lock()
	seq := s.enqueueSaveLocked(result)
	s.mu.Unlock()

	if err := s.waitApplied(ctx, seq); err != nil {
		return err
	}

	return <-result
}

// Flush blocks until every save queued so far has reached the store.
func (s *WishlistService) Flush(ctx context.Context) error {
	s.queueMu.Lock()
	target := s.enqueued
	s.queueMu.Unlock()

	return s.waitApplied(ctx, target)
}

// Close flushes pending saves and stops the worker. The service must not be
// mutated afterwards.
func (s *WishlistService) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	s.cancel()
	<-s.done

	return err
}

func (s *WishlistService) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *WishlistService) removeAt(idx int) {
	items := make([]domain.Attraction, 0, len(s.items)-1)
	items = append(items, s.items[:idx]...)
	s.items = append(items, s.items[idx+1:]...)
}

// enqueueSaveLocked must be called with s.mu held so that queue order
// matches mutation order.
func (s *WishlistService) enqueueSaveLocked(result chan error) uint64 {
	snapshot := cloneAttractions(s.items)

	s.queueMu.Lock()
	s.enqueued++
	seq := s.enqueued
	s.queue = append(s.queue, saveJob{seq: seq, items: snapshot, result: result})
	s.queueMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	return seq
}

func (s *WishlistService) waitApplied(ctx context.Context, seq uint64) error {
	s.queueMu.Lock()
	for s.applied < seq {
		ch := s.appliedCh
		s.queueMu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			s.queueMu.Lock()
			applied := s.applied
			s.queueMu.Unlock()
			if applied < seq {
				return ErrWishlistClosed
			}
			return nil
		}

		s.queueMu.Lock()
	}
	s.queueMu.Unlock()

	return nil
}

func (s *WishlistService) runSaveWorker(ctx context.Context) {
	defer close(s.done)

	s.logger.Debug("Wishlist save worker started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Wishlist save worker stopped")
			return
		case <-s.wake:
			s.drainQueue(ctx)
		}
	}
}

func (s *WishlistService) drainQueue(ctx context.Context) {
	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.queueMu.Unlock()
			return
		}
		job := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		err := s.persist(ctx, job.items)
		if job.result != nil {
			job.result <- err
		}

		s.queueMu.Lock()
		s.applied = job.seq
		close(s.appliedCh)
		s.appliedCh = make(chan struct{})
		s.queueMu.Unlock()
	}
}

func (s *WishlistService) persist(ctx context.Context, items []domain.Attraction) error {
	s.storeMu.Lock()
	err := s.store.Save(ctx, items)
	s.storeMu.Unlock()

	if err != nil {
		appErr := domain.AsAppError(err)

		s.mu.Lock()
		s.lastErr = appErr
		s.mu.Unlock()

		s.logger.Warn("Failed to save wishlist", zap.Int("count", len(items)), zap.Error(appErr))
		return appErr
	}

	s.logger.Debug("Saved wishlist", zap.Int("count", len(items)))
	return nil
}

func cloneAttractions(items []domain.Attraction) []domain.Attraction {
	out := make([]domain.Attraction, len(items))
	copy(out, items)
	return out
}

func uniqueByID(items []domain.Attraction) []domain.Attraction {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Attraction, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

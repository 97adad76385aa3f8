// Package app holds the application state: the single draft being composed,
// the committed order history, and the customer list. All mutation goes
// through this container so handlers stay thin and the update logic is
// testable without HTTP.
package app

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
	"github.com/zengzengppp/Voice-order-generator/internal/store"
)

var (
	ErrNoDraft    = errors.New("no draft order open")
	ErrDraftOpen  = errors.New("a draft order is already open")
	ErrBusy       = errors.New("a normalization is already in flight")
	ErrStale      = errors.New("draft changed while normalization was in flight")
	ErrValidation = errors.New("select a customer and add at least one named item")
)

// Normalizer turns the current items plus an utterance into a revised item
// list. Implemented by ai.Client.
type Normalizer interface {
	Normalize(ctx context.Context, current []order.Item, text string) ([]order.Item, error)
}

type App struct {
	normalizer Normalizer
	blobs      store.Blobs
	flushDelay time.Duration

	mu    sync.Mutex
	draft *order.Order
	// gen is bumped whenever the draft slot changes hands; a normalization
	// captures it on departure and its response is discarded on mismatch.
	gen  uint64
	busy bool

	orders    []order.Order
	customers []customer.Customer
	dirty     bool

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// New loads persisted state and starts the background flusher.
func New(ctx context.Context, n Normalizer, blobs store.Blobs, flushDelay time.Duration) (*App, error) {
	snap, err := store.Load(ctx, blobs)
	if err != nil {
		return nil, err
	}
	a := &App{
		normalizer: n,
		blobs:      blobs,
		flushDelay: flushDelay,
		orders:     snap.Orders,
		customers:  snap.Customers,
		kick:       make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	a.wg.Add(1)
	go a.flusher()
	return a, nil
}

// markDirty is called with a.mu held. Writes are coalesced: the flusher
// wakes once per burst of edits and writes the whole snapshot.
func (a *App) markDirty() {
	a.dirty = true
	select {
	case a.kick <- struct{}{}:
	default:
	}
}

func (a *App) flusher() {
	defer a.wg.Done()
	for {
		select {
		case <-a.done:
			return
		case <-a.kick:
			t := time.NewTimer(a.flushDelay)
			select {
			case <-t.C:
				if err := a.Flush(context.Background()); err != nil {
					log.Printf("[store] flush: %v", err)
				}
			case <-a.done:
				t.Stop()
				return
			}
		}
	}
}

// Flush writes the snapshot now if anything changed since the last write.
func (a *App) Flush(ctx context.Context) error {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return nil
	}
	snap := store.Snapshot{
		Orders:    copyOrders(a.orders),
		Customers: append([]customer.Customer(nil), a.customers...),
	}
	a.dirty = false
	a.mu.Unlock()

	if err := store.Save(ctx, a.blobs, snap); err != nil {
		// Re-kick so the flusher retries after the idle delay instead of
		// sitting on dirty state until the next mutation.
		a.mu.Lock()
		a.markDirty()
		a.mu.Unlock()
		return err
	}
	return nil
}

// Close stops the flusher and writes any pending state.
func (a *App) Close(ctx context.Context) error {
	close(a.done)
	a.wg.Wait()
	return a.Flush(ctx)
}

func copyOrder(o order.Order) order.Order {
	cp := o
	cp.Items = append([]order.Item(nil), o.Items...)
	return cp
}

func copyOrders(orders []order.Order) []order.Order {
	out := make([]order.Order, len(orders))
	for i, o := range orders {
		out[i] = copyOrder(o)
	}
	return out
}

package observable

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/plotpipe/plotpipe-sdk/events"
)

// ObservableImpl provides a base implementation of the Observable interface
// it should be embedded in anything which reports export lifecycle events
type ObservableImpl struct {
	observerLock sync.RWMutex
	// Observers is a list of all Observers that are currently registered
	Observers []Observer
}

func (p *ObservableImpl) AddObserver(o Observer) error {
	slog.Debug("AddObserver")
	p.observerLock.Lock()
	p.Observers = append(p.Observers, o)
	p.observerLock.Unlock()

	return nil
}

func (p *ObservableImpl) NotifyObservers(ctx context.Context, e events.Event) error {
	p.observerLock.RLock()
	defer p.observerLock.RUnlock()
	var notifyErrors []error
	for _, observer := range p.Observers {
		err := observer.Notify(ctx, e)
		if err != nil {
			notifyErrors = append(notifyErrors, err)
		}
	}

	return errors.Join(notifyErrors...)
}

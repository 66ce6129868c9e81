package observable

import (
	"context"

	"github.com/plotpipe/plotpipe-sdk/events"
)

type Observable interface {
	AddObserver(Observer) error
}

// Observer is the interface that all observers must implement
type Observer interface {
	Notify(context.Context, events.Event) error
}

package destination

import (
	"fmt"
)

// Factory is a global SinkFactory instance
var Factory = newSinkFactory()

type SinkFactory struct {
	sinks map[string]func() Sink
}

func newSinkFactory() SinkFactory {
	return SinkFactory{
		sinks: make(map[string]func() Sink),
	}
}

func (f *SinkFactory) RegisterSinks(ctors ...func() Sink) {
	for _, ctor := range ctors {
		// create an instance of the sink to get the identifier
		s := ctor()
		f.sinks[s.Identifier()] = ctor
	}
}

// GetSink returns a new instance of the registered sink with the given identifier
func (f *SinkFactory) GetSink(id string) (Sink, error) {
	ctor, ok := f.sinks[id]
	if !ok {
		return nil, fmt.Errorf("no sink registered with identifier '%s'", id)
	}
	return ctor(), nil
}

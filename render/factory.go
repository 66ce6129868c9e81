package render

import (
	"fmt"
)

// Factory is a global RendererFactory instance
var Factory = newRendererFactory()

type RendererFactory struct {
	renderers map[string]func() Renderer
}

func newRendererFactory() RendererFactory {
	return RendererFactory{
		renderers: make(map[string]func() Renderer),
	}
}

func (f *RendererFactory) RegisterRenderers(ctors ...func() Renderer) {
	for _, ctor := range ctors {
		// create an instance of the renderer to get the identifier
		r := ctor()
		f.renderers[r.Identifier()] = ctor
	}
}

// GetRenderer returns a new instance of the registered renderer with the given identifier
func (f *RendererFactory) GetRenderer(id string) (Renderer, error) {
	ctor, ok := f.renderers[id]
	if !ok {
		return nil, fmt.Errorf("no renderer registered with identifier '%s'", id)
	}
	return ctor(), nil
}

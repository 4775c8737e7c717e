package app

import (
	"context"

	"github.com/cleitonmarx/symbiont-smarttasks/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the dependency and configuration report as a Mermaid graph
// and registers it for the introspection page.
type MermaidGraphIntrospector struct{}

// Introspect implements symbiont's Introspector.
func (MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphName)
	return nil
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	const graph = "graph TD;\nInitDB-->TaskRepository;"

	tests := map[string]struct {
		registered   bool
		target       string
		expectCode   int
		expectType   string
		expectInBody []string
	}{
		"html-page": {
			registered: true,
			target:     "/introspect",
			expectCode: http.StatusOK,
			expectType: "text/html; charset=utf-8",
			expectInBody: []string{
				"<title>SmartTasks Introspection Graph</title>",
				"<h1>SmartTasks Introspection Graph</h1>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				`"graph TD;\nInitDB--\u003eTaskRepository;"`,
			},
		},
		"raw-mermaid": {
			registered:   true,
			target:       "/introspect?format=mermaid",
			expectCode:   http.StatusOK,
			expectType:   "text/plain; charset=utf-8",
			expectInBody: []string{graph},
		},
		"graph-not-registered": {
			target:       "/introspect",
			expectCode:   http.StatusInternalServerError,
			expectType:   "text/plain; charset=utf-8",
			expectInBody: []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.registered {
				depend.RegisterNamed(graph, IntrospectionGraphName)
				t.Cleanup(depend.ClearContainer)
			}

			w := httptest.NewRecorder()
			IntrospectHandler(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectCode, w.Code)
			assert.Equal(t, tt.expectType, w.Header().Get("Content-Type"))
			for _, s := range tt.expectInBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

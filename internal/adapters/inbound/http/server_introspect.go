package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the container name under which the Mermaid dependency graph is registered.
const IntrospectionGraphName = "introspection-graph-mermaid"

//go:embed templates/introspect.gohtml
var templateFS embed.FS

var introspectTmpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))

type introspectPage struct {
	Title string
	Graph string
}

// IntrospectHandler renders the dependency graph of the running application.
// With ?format=mermaid the raw graph source is returned instead of the HTML page.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectPage{Title: "SmartTasks Introspection Graph", Graph: graph}
	if err := introspectTmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}

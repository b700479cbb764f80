package swaggerkit

import (
	"net/http"

	phttp "internhasha/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	docsRoot = "/api/docs"
	docsJSON = docsRoot + "/doc.json"
)

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json.
// Nothing is mounted when enabled is false
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsJSON, docHandler())
	r.Handle(docsRoot+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("internhasha"),
		httpSwagger.URL(docsJSON),
		httpSwagger.DocExpansion("none"),
	))
}

package httpapi

import (
	"embed"
	"net/http"
)

//go:embed docs/swagger.json docs/index.html
var docsFS embed.FS

// HandleDocsUI RapiDoc UI endpoint
func HandleDocsUI(w http.ResponseWriter, r *http.Request) {
	serveDoc(w, r, "docs/index.html", "text/html; charset=utf-8")
}

// HandleDocsJSON Swagger JSON endpoint
func HandleDocsJSON(w http.ResponseWriter, r *http.Request) {
	serveDoc(w, r, "docs/swagger.json", "application/json")
}

func serveDoc(w http.ResponseWriter, r *http.Request, name string, contentType string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	data, err := docsFS.ReadFile(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, name+" not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

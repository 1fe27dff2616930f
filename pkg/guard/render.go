package guard

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// DataStar request detection.
const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
)

// RenderOption is an alias for datastar's PatchElementOption.
type RenderOption = datastar.PatchElementOption

// WithTarget sets the selector the component is patched into for DataStar
// requests.
func WithTarget(selector string) RenderOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM for DataStar
// requests.
func WithPatchMode(mode datastar.ElementPatchMode) RenderOption {
	return datastar.WithMode(mode)
}

// isDataStar checks whether the request expects a DataStar SSE response.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(dataStarQueryParam)
}

// Render writes a (typically guarded) component to the response. DataStar
// requests get the component as an SSE element patch; everything else gets
// plain HTML.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component, opts ...RenderOption) error {
	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(component, opts...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

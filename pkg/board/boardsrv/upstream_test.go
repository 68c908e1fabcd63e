package boardsrv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/talentgate/talentgate/pkg/hrclient"
)

// newUpstream levanta un backend HR falso para los tests de orquestación
func newUpstream(t *testing.T, mux *http.ServeMux) *hrclient.Client {
	t.Helper()
	server := httptest.NewServer(methodPatterns(mux))
	t.Cleanup(server.Close)
	return hrclient.New(server.URL, 5*time.Second)
}

// methodPatterns emula los patrones "METHOD /path" de go1.22 sobre el
// ServeMux de go1.21: un patrón sin "/" inicial se indexa como host, así que
// resolvemos el handler con un request sombra cuyo host es `method + " "`
func methodPatterns(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shadow := r.Clone(r.Context())
		shadow.Host = r.Method + " "
		handler, _ := mux.Handler(shadow)
		handler.ServeHTTP(w, r)
	})
}

func writeEnvelope(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    200,
		"status":  "OK",
		"message": "",
		"data":    json.RawMessage(raw),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

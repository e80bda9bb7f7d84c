/*
Package api
File: router.go
Description:
    Route registration: the REST endpoints, the WebSocket upgrade path
    and permissive CORS so the webview client can reach the server
    across domains.
*/

package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, hub *Hub) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		ServeWs(hub, w, req)
	})
	return cors.Default().Handler(r)
}

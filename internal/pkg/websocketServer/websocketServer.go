package websocketServer

import (
	"net/http"
)

// WebsocketServer broadcasts exchange notifications to every connected
// observer.
type WebsocketServer interface {
	Handler(responseWriter http.ResponseWriter, request *http.Request)
	Publish(message []byte)
}

package web

import (
	"net/http"
)

// Handler adapts a Response-returning request function to http.Handler.
// SimulatedDelay is forwarded so handlers can emulate slow upstreams
// during local development.
type Handler struct {
	Request        func(request *http.Request, simulatedDelay int) *Response
	SimulatedDelay int
}

func (handler Handler) ServeHTTP(responseWriter http.ResponseWriter, request *http.Request) {
	response := handler.Request(request, handler.SimulatedDelay)
	response.Write(responseWriter)
}

// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	"github.com/matt-dz/foodgram/internal/api/routes/respond"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//
//	@Produce	json
//	@Success	200	{object}	PingResponse
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, PingResponse{Status: "ok"})
}

package health

import (
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
)

type Response struct {
	Status string `json:"status"`
}

// Handle GET /healthz
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}

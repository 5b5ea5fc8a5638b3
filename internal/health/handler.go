package health

import (
	"net/http"
	"time"

	"vyeya-be/internal/metrics"
	"vyeya-be/internal/utils"
)

// Handler reports liveness plus the process-wide counters.
func Handler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "OK",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"requests":       metrics.HTTPRequests.Load(),
		"orders_created": metrics.OrdersCreated.Load(),
		"auth_failures":  metrics.AuthFailures.Load(),
	})
}

package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response. It is written bare,
// without the API envelope, so load balancer probes stay simple.
type HealthResponse struct {
	Status    string   `json:"status"`
	Providers []string `json:"providers"`
	Cache     string   `json:"cache"`
}

// Health writes a health check response listing the registered providers
// and the snapshot cache state.
func Health(c echo.Context, providers []string, cache string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "ok",
		Providers: providers,
		Cache:     cache,
	})
}

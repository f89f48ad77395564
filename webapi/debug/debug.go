package debug

import (
	"context"
	"log/slog"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// StatusReporter reports the health of the rate store.
type StatusReporter interface {
	Status(ctx context.Context) (domain.StoreStatus, error)
}

// DBStatusResponse is the body of GET /api/debug/db-status.
type DBStatusResponse struct {
	Success      bool           `json:"success"`
	ConfigLoaded bool           `json:"config_loaded"`
	Config       map[string]any `json:"config"`
	DatabaseType string         `json:"database_type"`
	Version      string         `json:"version,omitempty"`
	ConnectionOK bool           `json:"connection_ok"`
	TableExists  bool           `json:"table_exists"`
	RecordCount  int64          `json:"record_count"`
	Error        *string        `json:"error"`
}

// TestConnectionResponse is the body of a successful GET /api/test-connection.
type TestConnectionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Database string `json:"database"`
}

// Routes registers the store diagnostics endpoints.
func Routes(app *fiber.App, cfg config.DB, store StatusReporter, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	app.Get("/api/debug/db-status", DBStatus(cfg, store, logger))
	app.Get("/api/test-connection", TestConnection(cfg, store, logger))
}

// DBStatus returns a Fiber handler describing the store. It always answers
// 200; success mirrors whether the store could be reached.
// @Summary Rate store status
// @Description Redacted database configuration, connectivity, table presence and record count.
// @Tags debug
// @Produce json
// @Success 200 {object} DBStatusResponse
// @Router /api/debug/db-status [get]
func DBStatus(cfg config.DB, store StatusReporter, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := store.Status(c.Context())
		resp := DBStatusResponse{
			Success:      err == nil,
			ConfigLoaded: true,
			Config:       cfg.Redacted(),
			DatabaseType: status.Driver,
			Version:      status.Version,
			ConnectionOK: status.ConnectionOK,
			TableExists:  status.TableExists,
			RecordCount:  status.RecordCount,
		}
		if err != nil {
			logger.Warn("Store status check failed", "error", err)
			msg := err.Error()
			resp.Error = &msg
		}
		return c.JSON(resp)
	}
}

// TestConnection returns a Fiber handler that connects to the store and
// reports the server version.
// @Summary Test the store connection
// @Tags debug
// @Produce json
// @Success 200 {object} TestConnectionResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/test-connection [get]
func TestConnection(cfg config.DB, store StatusReporter, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := store.Status(c.Context())
		if err != nil {
			logger.Error("Store connection test failed", "error", err)
			return common.ErrorJSON(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(TestConnectionResponse{
			Success:  true,
			Message:  "connected to " + status.Driver,
			Version:  status.Version,
			Driver:   status.Driver,
			Host:     cfg.Host,
			Database: cfg.Name,
		})
	}
}

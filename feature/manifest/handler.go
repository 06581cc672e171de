package manifest

import (
	"errors"

	"manifest-sync/core/logger"
	"manifest-sync/core/utils"
	"manifest-sync/feature/manifest/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the manifest pipeline.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	// Referenced for Swagger model discovery.
	var _ = models.PlugRecord{}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the manifest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manifest")
	group.Get("/status", h.HandleStatus)
	group.Post("/sync", h.HandleSync)
	group.Get("/runs", h.HandleRuns)
	group.Get("/weapons", h.HandleWeapons)
	group.Get("/plugs/:hash", h.HandleGetPlug)
}

// HandleStatus reports the stored version and latest run.
// @Summary Manifest Status
// @Description Returns the stored manifest version and, when history is enabled, the latest run.
// @Tags manifest
// @Produce json
// @Success 200 {object} Status "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /manifest/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	status, err := h.service.Status(c.Context())
	if err != nil {
		l.Error("Status lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

// HandleSync runs the pipeline.
// @Summary Sync Manifest
// @Description Fetches the remote manifest and rewrites the artifacts when the version changed.
// @Tags manifest
// @Produce json
// @Param force query boolean false "Re-process even if the version is unchanged"
// @Success 200 {object} RunResult "Run Result"
// @Failure 409 {object} map[string]string "Run In Progress"
// @Failure 502 {object} map[string]string "Remote Manifest Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /manifest/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	force := utils.ToBool(c.Query("force"))
	l.Info("Triggering manifest sync", zap.Bool("force", force))

	result, err := h.service.Run(c.Context(), RunOptions{Force: force})
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, ErrRunInProgress):
			status = fiber.StatusConflict
		case errors.Is(err, ErrManifestUnavailable), errors.Is(err, ErrDefinitionFetchFailed):
			status = fiber.StatusBadGateway
		}
		l.Error("Manifest sync failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
			"stage": FailedStage(err),
		})
	}

	l.Info("Manifest sync completed",
		zap.Bool("skipped", result.Skipped),
		zap.Int("weapons", result.Weapons),
		zap.Int("plugs", result.Plugs))
	return c.JSON(result)
}

// HandleRuns lists recent runs.
// @Summary List Runs
// @Description Lists recent pipeline runs, newest first.
// @Tags manifest
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} models.ManifestRun "Runs"
// @Failure 503 {object} map[string]string "History Disabled"
// @Security ApiKeyAuth
// @Router /manifest/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	runs, err := h.service.Runs(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleWeapons serves the stored weapon artifact.
// @Summary Weapon Artifact
// @Description Returns the weapon artifact of the last successful run.
// @Tags manifest
// @Produce json
// @Success 200 {array} models.WeaponRecord "Weapons"
// @Failure 404 {object} map[string]string "No Artifact Yet"
// @Security ApiKeyAuth
// @Router /manifest/weapons [get]
func (h *Handler) HandleWeapons(c *fiber.Ctx) error {
	data, err := h.service.WeaponsArtifact(c.Context())
	if err != nil {
		return h.readError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleGetPlug serves one plug of the stored closure.
// @Summary Get Plug
// @Description Returns a plug record from the stored plug closure.
// @Tags manifest
// @Produce json
// @Param hash path string true "Plug hash"
// @Success 200 {object} models.PlugRecord "Plug"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /manifest/plugs/{hash} [get]
func (h *Handler) HandleGetPlug(c *fiber.Ctx) error {
	hash, ok := utils.ParseHash(c.Params("hash"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid hash"})
	}

	record, err := h.service.Plug(c.Context(), utils.HashKey(hash))
	if err != nil {
		return h.readError(c, err)
	}
	return c.JSON(record)
}

func (h *Handler) readError(c *fiber.Ctx, err error) error {
	if IsClientError(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.logger, c).Error("Artifact read failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

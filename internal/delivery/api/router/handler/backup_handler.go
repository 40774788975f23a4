package handler

import (
	"fmt"
	"io"
	"net/http"

	"pos/internal/delivery/api/response"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BackupHandlerParams holds dependencies for BackupHandler, injected by Fx.
type BackupHandlerParams struct {
	fx.In

	BackupUC usecase.BackupUsecase
}

// BackupHandler exports, archives and restores backups
type BackupHandler struct {
	backupUC usecase.BackupUsecase
}

// NewBackupHandler is the constructor for BackupHandler
func NewBackupHandler(params BackupHandlerParams) *BackupHandler {
	return &BackupHandler{backupUC: params.BackupUC}
}

// Export handles GET /backup. The document is sent bare, as a download,
// so it can be posted back to /backup/restore unchanged.
func (h *BackupHandler) Export(c echo.Context) error {
	backup := h.backupUC.Export(c.Request().Context())

	filename := fmt.Sprintf("pos-backup-%s.json", backup.Date.Format("20060102-150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.JSON(http.StatusOK, backup)
}

// Restore handles POST /backup/restore with a backup document as body
func (h *BackupHandler) Restore(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidBackupFormat.WithDetails("body tidak dapat dibaca"))
	}

	result, err := h.backupUC.Restore(c.Request().Context(), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Archive handles POST /backups
func (h *BackupHandler) Archive(c echo.Context) error {
	archive, err := h.backupUC.Archive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, archive)
}

// ListArchives handles GET /backups
func (h *BackupHandler) ListArchives(c echo.Context) error {
	archives, err := h.backupUC.ListArchives(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, archives)
}

// RestoreArchive handles POST /backups/:name/restore
func (h *BackupHandler) RestoreArchive(c echo.Context) error {
	result, err := h.backupUC.RestoreArchive(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

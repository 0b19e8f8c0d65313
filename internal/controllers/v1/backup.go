package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/export"
	"github.com/financa-pro/backend/internal/httputil"
)

func (co Controller) RegisterBackupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBackup)
	r.POST("", co.RestoreBackup)
}

// @Summary		Download backup
// @Description	Downloads the full snapshot as an indented JSON document.
// @Tags			Backup
// @Produce		json
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/backup [get]
func (co Controller) GetBackup(c *gin.Context) {
	data, err := export.Backup(co.store.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BackupFilename(time.Now())))
	c.Data(http.StatusOK, "application/json", data)
}

// @Summary		Restore backup
// @Description	Validates the uploaded document and replaces every collection with it. Restore is never a merge.
// @Tags			Backup
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/backup [post]
func (co Controller) RestoreBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	snapshot, err := export.ParseBackup(data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.store.ReplaceAll(snapshot); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

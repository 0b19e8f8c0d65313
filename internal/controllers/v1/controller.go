// Package v1 implements the v1 HTTP API.
//
// Handlers are glue: they bind requests, delegate to the store and the
// report/export/notify packages and shape responses. No domain rule
// lives here.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financa-pro/backend/internal/store"
	"github.com/financa-pro/backend/internal/types"
)

// Controller bundles the dependencies of the v1 handlers.
type Controller struct {
	store         *store.Store
	notifyNumbers []string
}

// New returns a Controller using the given store and notification
// targets.
func New(s *store.Store, notifyNumbers []string) Controller {
	return Controller{store: s, notifyNumbers: notifyNumbers}
}

// RegisterRoutes attaches all v1 routes to the group.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	co.RegisterAuthRoutes(v1)
	co.RegisterUserRoutes(v1.Group("/users"))
	co.RegisterMemberRoutes(v1.Group("/members"))
	co.RegisterCardRoutes(v1.Group("/cards"))
	co.RegisterEntityRoutes(v1.Group("/entities"))
	co.RegisterTransactionRoutes(v1.Group("/transactions"))
	co.RegisterGoalRoutes(v1.Group("/goals"))
	co.RegisterReportRoutes(v1.Group("/reports"))
	co.RegisterBackupRoutes(v1.Group("/backup"))
	co.RegisterSettingsRoutes(v1.Group("/settings"))

	v1.DELETE("", co.Cleanup)
}

// monthFromQuery reads the "month" query parameter in YYYY-MM format,
// defaulting to the current month.
func monthFromQuery(c *gin.Context) (types.Month, error) {
	value := c.Query("month")
	if value == "" {
		return types.MonthOf(time.Now()), nil
	}

	return types.ParseMonth(value)
}

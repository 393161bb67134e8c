// Package routes wires the HTTP surface together.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/handlers"
	"github.com/rgopal/chitfund/internal/middleware"
	"github.com/rgopal/chitfund/internal/models"
)

// Setup registers every route. blob is the server side of the remote
// snapshot store; deployments that sync against another instance can pass a
// nil blob to omit it.
func Setup(r *gin.Engine, h *handlers.Handler, jwtManager *auth.JWTManager, blob *handlers.SnapshotBlob) {
	r.Use(middleware.RequestLogger())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// The snapshot blob endpoint is unauthenticated, matching the
		// original deployment where replicas sync against a plain blob URL.
		if blob != nil {
			api.GET("/sync", blob.Get)
			api.POST("/sync", blob.Put)
		}

		api.POST("/login", h.Login)
		api.GET("/portal", h.PortalLogin)

		authed := api.Group("/", middleware.RequireAuth(jwtManager))
		{
			chits := authed.Group("/chits")
			{
				chits.GET("", h.ListChits)
				chits.POST("", h.CreateChit)
				chits.PUT("/:id", h.UpdateChit)
				chits.GET("/:id/summary", h.GroupSummary)
				chits.GET("/:id/dues", h.GroupMemberDues)
			}

			members := authed.Group("/members")
			{
				members.GET("", h.ListMembers)
				members.POST("", h.CreateMember)
				members.PUT("/:id", h.UpdateMember)
				members.POST("/bulk", h.BulkAddMembers)
				members.GET("/:id/magic-link", h.MagicLink)
			}

			authed.GET("/memberships", h.ListMemberships)
			authed.POST("/memberships", h.CreateMembership)
			authed.GET("/installments", h.ListInstallments)
			authed.GET("/installments/status", h.InstallmentStatus)

			allotments := authed.Group("/allotments")
			{
				allotments.GET("", h.ListAllotments)
				allotments.POST("", h.ConfirmAllotment)
				allotments.PUT("/:id", h.UpdateAllotment)
				allotments.POST("/:id/revoke", h.RevokeAllotment)
			}

			payments := authed.Group("/payments")
			{
				payments.GET("", h.ListPayments)
				payments.POST("", h.RecordPayment)
			}

			requests := authed.Group("/payment-requests")
			{
				requests.GET("", h.ListPaymentRequests)
				requests.POST("", h.CreatePaymentRequest)
				requests.POST("/:id/sent", h.MarkPaymentRequestSent)
			}

			authed.GET("/store/status", h.SyncStatus)
			authed.POST("/store/sync", h.TriggerSync)
			authed.GET("/store/backup", h.Backup)

			admin := authed.Group("/", middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/store/restore", h.Restore)
				admin.GET("/settings", h.GetSettings)
				admin.PUT("/settings", h.UpdateSettings)
			}
		}
	}
}

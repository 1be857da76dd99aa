package routes

import (
	"mechmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs          = "/jobs"
	PathBids          = "/bids"
	PathChangeOrders  = "/change-orders"
	PathNotifications = "/notifications"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	bidHandler *handlers.BidHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/transition", jobHandler.TransitionJob)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)
		jobs.GET("/:job_id/actions", jobHandler.GetActions)
		jobs.GET("/:job_id/bids", bidHandler.ListJobBids)
		jobs.GET("/:job_id/change-orders", changeOrderHandler.ListJobChangeOrders)
	}

	bids := rg.Group(PathBids)
	{
		bids.POST("", bidHandler.SubmitBid)
		bids.POST("/:bid_id/accept", bidHandler.AcceptBid)
		bids.POST("/:bid_id/withdraw", bidHandler.WithdrawBid)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.POST("", changeOrderHandler.Propose)
		changeOrders.GET("/:change_order_id", changeOrderHandler.GetChangeOrder)
		changeOrders.PATCH("/:change_order_id/approve", changeOrderHandler.Approve)
		changeOrders.PATCH("/:change_order_id/reject", changeOrderHandler.Reject)
		changeOrders.POST("/:change_order_id/release", changeOrderHandler.Release)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("/:user_id/unread", notificationHandler.UnreadCount)
		notifications.POST("/:user_id/seen", notificationHandler.MarkSeen)
	}
}

package notifications

import (
	"github.com/gin-gonic/gin"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/services/notification"
)

func RegisterNotificationsRoutes(r *gin.RouterGroup, svc *notification.Service) {
	r.POST("/notifications", CreateNotification(svc))
	r.GET("/notifications", ListNotifications(svc))
	r.GET("/notifications/upcoming", UpcomingNotifications(svc))
	r.GET("/notifications/module/:module", NotificationsByModule(svc))
	r.GET("/notifications/:id", GetNotification(svc))
	r.PUT("/notifications/:id", UpdateNotification(svc))
	r.PUT("/notifications/:id/snooze", SnoozeNotification(svc))
	r.PATCH("/notifications/:id/complete", CompleteNotification(svc))
}

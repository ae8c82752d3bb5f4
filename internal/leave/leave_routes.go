package leave

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the leave endpoints. submitMiddleware runs only in
// front of the submit handler.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitMiddleware ...gin.HandlerFunc) {
	leaves := r.Group("/leave")
	{
		submit := append(append([]gin.HandlerFunc{}, submitMiddleware...), handler.Submit)
		leaves.POST("/submit", submit...)
		leaves.PUT("/approve/:id", handler.Approve)
		leaves.PUT("/reject/:id/:leaveReason", handler.Reject)
		leaves.PUT("/update/:id", handler.Update)
		leaves.DELETE("/delete/:id", handler.Delete)

		leaves.GET("", handler.GetAll)
		leaves.GET("/fileSize", handler.GetFileSize)
		leaves.GET("/pending/employee/:employeeId", handler.GetPendingByEmployee)
		leaves.GET("/approve/employee/:employeeId", handler.GetApprovedByEmployee)
		leaves.GET("/reject/employee/:employeeId", handler.GetRejectedByEmployee)
		leaves.GET("/manager/:managerId", handler.GetByManager)
		leaves.GET("/employee/:employeeId", handler.GetByEmployee)
		leaves.GET("/:status/manager/:managerId", handler.GetByStatusAndManager)
	}
}

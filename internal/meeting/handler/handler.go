package handler

import (
	"net/http"

	"github.com/bookclub/bookclub-api/internal/httpapi"
	"github.com/bookclub/bookclub-api/internal/meeting"
	"github.com/gin-gonic/gin"
)

// RegisterMeetingRoutes mounts the meetings endpoints under /api/v1.
func RegisterMeetingRoutes(r *gin.Engine, svc *meeting.Service) {
	r.POST("/api/v1/meetings", func(c *gin.Context) {
		var req meeting.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpapi.BadRequest(c, err)
			return
		}
		mt, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, mt)
	})

	r.GET("/api/v1/meetings", func(c *gin.Context) {
		meetings, err := svc.List(c.Request.Context())
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, meetings)
	})

	r.GET("/api/v1/meetings/:id", func(c *gin.Context) {
		mt, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, mt)
	})

	r.PATCH("/api/v1/meetings/:id", func(c *gin.Context) {
		var req meeting.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpapi.BadRequest(c, err)
			return
		}
		mt, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, mt)
	})

	r.DELETE("/api/v1/meetings/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

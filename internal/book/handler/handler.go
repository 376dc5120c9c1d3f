package handler

import (
	"net/http"

	"github.com/bookclub/bookclub-api/internal/book"
	"github.com/bookclub/bookclub-api/internal/httpapi"
	"github.com/gin-gonic/gin"
)

// RegisterBookRoutes mounts the books endpoints under /api/v1.
func RegisterBookRoutes(r *gin.Engine, svc *book.Service) {
	r.POST("/api/v1/books", func(c *gin.Context) {
		var req book.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpapi.BadRequest(c, err)
			return
		}
		b, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	})

	r.GET("/api/v1/books", func(c *gin.Context) {
		sorted := c.Query("sort") == "supporters"
		books, err := svc.List(c.Request.Context(), sorted)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, books)
	})

	r.GET("/api/v1/books/:id", func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	})

	r.PATCH("/api/v1/books/:id", func(c *gin.Context) {
		var req book.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpapi.BadRequest(c, err)
			return
		}
		b, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	})

	r.DELETE("/api/v1/books/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.POST("/api/v1/books/:id/supporters", func(c *gin.Context) {
		var req book.VoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpapi.BadRequest(c, err)
			return
		}
		b, err := svc.Vote(c.Request.Context(), c.Param("id"), req.Supporter)
		if err != nil {
			httpapi.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	})
}

package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the suggestion generation body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAcceptReq binds and validates the acceptance body.
func (h *handler) processAcceptReq(c *gin.Context) (acceptReq, error) {
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpcomingReq binds and validates the look-ahead query parameters.
func (h *handler) processUpcomingReq(c *gin.Context) (upcomingReq, error) {
	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

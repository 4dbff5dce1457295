package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaravsharma17/cloudbin/internal/service"
)

// GetPendingRequests returns pending waste requests with their owners
func GetPendingRequests(c *gin.Context) {
	requests, err := service.ListPendingRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ApproveRequest approves a pending request and awards its coins
func ApproveRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := service.ApproveRequest(requestID); err != nil {
		switch err {
		case service.ErrRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "Request not found"})
		case service.ErrRequestResolved:
			c.JSON(http.StatusConflict, gin.H{"detail": "Request has already been resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request approved and coins awarded"})
}

// RejectRequest rejects a pending request
func RejectRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := service.RejectRequest(requestID); err != nil {
		switch err {
		case service.ErrRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "Request not found"})
		case service.ErrRequestResolved:
			c.JSON(http.StatusConflict, gin.H{"detail": "Request has already been resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}

// GetAccounts returns all accounts
func GetAccounts(c *gin.Context) {
	accounts, err := service.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func parseRequestID(c *gin.Context) (int, bool) {
	var id int
	if _, err := fmt.Sscanf(c.Param("request_id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request ID"})
		return 0, false
	}
	return id, true
}

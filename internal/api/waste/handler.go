package waste

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaravsharma17/cloudbin/internal/api/auth"
	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/service"
)

// SubmitRequest creates a waste pickup request for the caller
func SubmitRequest(c *gin.Context) {
	account := auth.CurrentAccount(c)

	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := service.SubmitRequest(account.ID, req.WasteType, req.Quantity, req.Location)
	if err != nil {
		if err == service.ErrInvalidQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Quantity must be a positive integer"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetRequests returns the caller's waste requests
func GetRequests(c *gin.Context) {
	account := auth.CurrentAccount(c)

	requests, err := service.ListRequests(account.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

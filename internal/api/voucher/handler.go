package voucher

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaravsharma17/cloudbin/internal/api/auth"
	"github.com/aaravsharma17/cloudbin/internal/service"
)

// GetVouchers returns in-stock vouchers
func GetVouchers(c *gin.Context) {
	vouchers, err := service.ListAvailableVouchers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vouchers": vouchers})
}

// RedeemVoucher exchanges the caller's coins for a voucher code
func RedeemVoucher(c *gin.Context) {
	account := auth.CurrentAccount(c)

	var voucherID int
	if _, err := fmt.Sscanf(c.Param("voucher_id"), "%d", &voucherID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid voucher ID"})
		return
	}

	resp, err := service.RedeemVoucher(account.ID, voucherID)
	if err != nil {
		switch err {
		case service.ErrVoucherNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "Voucher not found"})
		case service.ErrOutOfStock:
			c.JSON(http.StatusConflict, gin.H{"detail": "Voucher is out of stock"})
		case service.ErrInsufficientCoins:
			c.JSON(http.StatusConflict, gin.H{"detail": "Not enough coins"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

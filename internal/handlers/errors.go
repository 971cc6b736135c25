package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/internal/engine"
	"gorm.io/gorm"
)

var (
	errNotHost  = errors.New("only the host can perform this action")
	errNotOwner = errors.New("you can only manage your own RSVPs")
)

var engineErrors = []error{
	engine.ErrEventNotOpen,
	engine.ErrDeadlinePassed,
	engine.ErrDuplicateRSVP,
	engine.ErrHostCannotRSVP,
	engine.ErrInsufficientCapacity,
	engine.ErrFoodItemNotFound,
	engine.ErrFoodItemFullyClaimed,
	engine.ErrInvalidTransition,
	engine.ErrEventNotInvitable,
	engine.ErrAlreadyInvited,
	engine.ErrNoReservedSpots,
	engine.ErrQuorumNotMet,
	engine.ErrHostTrustTooLow,
	engine.ErrInvalidDates,
	engine.ErrInvalidGuestCount,
	engine.ErrReferralLimitExceeded,
}

func isEngineError(err error) bool {
	for _, target := range engineErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondTxError maps a failed transaction onto an HTTP response. Engine guard
// failures surface their own message; unexpected errors are logged and hidden.
func respondTxError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, errNotHost) || errors.Is(err, errNotOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrHostTrustTooLow):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isEngineError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Transaction failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

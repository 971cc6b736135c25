package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func paramID(ctx *gin.Context, name string) (uint, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("missing " + name)
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return uint(id), nil
}

func GetEventID(ctx *gin.Context) (uint, error) {
	return paramID(ctx, "event_id")
}

func GetRSVPID(ctx *gin.Context) (uint, error) {
	return paramID(ctx, "rsvp_id")
}

func GetInviteID(ctx *gin.Context) (uint, error) {
	return paramID(ctx, "invite_id")
}

func GetUserID(ctx *gin.Context) (uint, error) {
	return paramID(ctx, "user_id")
}

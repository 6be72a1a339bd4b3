package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

type hotelURI struct {
	HotelID int64 `uri:"hotelId" binding:"required,gt=0"`
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/:hotelId/rooms", h.listByHotel)
}

func (h *RoomHandler) listByHotel(c *gin.Context) {
	var uri hotelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.service.ListByHotel(c.Request.Context(), uri.HotelID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

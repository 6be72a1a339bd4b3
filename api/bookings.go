package api

import (
	"net/http"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}

type bookingURI struct {
	BookingID int64 `uri:"bookingId" binding:"required,gt=0"`
}

type bookingResponse struct {
	ID   int64        `json:"id"`
	Room *domain.Room `json:"Room"`
}

type bookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.get)
	router.POST("", h.create)
	router.PUT("/:bookingId", h.update)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse{ID: b.ID, Room: b.Room})
}

func (h *BookingHandler) create(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookingID, err := h.service.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingIDResponse{BookingID: bookingID})
}

func (h *BookingHandler) update(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var uri bookingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookingID, err := h.service.UpdateBooking(c.Request.Context(), userID, req.RoomID, uri.BookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingIDResponse{BookingID: bookingID})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type CreateBookingPayload struct {
	CustomerID   uint   `json:"customer_id" binding:"required"`
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type BookingResponse struct {
	BookingID     uint   `json:"booking_id"`
	ReferenceCode string `json:"reference_code"`
	CustomerID    uint   `json:"customer_id"`
	RoomID        uint   `json:"room_id"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Status        string `json:"status"`
}

func bookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.ID,
		ReferenceCode: b.ReferenceCode,
		CustomerID:    b.CustomerID,
		RoomID:        b.RoomID,
		CheckInDate:   b.CheckIn().Format("2006-01-02"),
		CheckOutDate:  b.CheckOut().Format("2006-01-02"),
		Status:        string(b.Status),
	}
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "invalid booking payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(payload.CustomerID, payload.RoomID, payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bookingResponse(booking))
}

// GetBooking (GET /api/bookings/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBooking(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookingResponse(booking))
}

// CancelBooking (POST /api/bookings/:id/cancel)
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CancelBooking(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": id, "status": string(models.BookingCancelled)})
}

// CompleteBooking (POST /api/bookings/:id/complete)
func (ctrl *BookingController) CompleteBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CompleteBooking(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": id, "status": string(models.BookingCompleted)})
}

// ListCustomerBookings (GET /api/customers/:id/bookings)
func (ctrl *BookingController) ListCustomerBookings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	bookings, err := ctrl.BookingSvc.ListBookingsForCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingResponse(&bookings[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// idParam reads the :id path segment as a positive integer, writing the
// error response itself when it isn't one.
func idParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// controllers/booking.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"eventhub-backend/services"
	"eventhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingInput struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Price     *int   `json:"price"`
	Status    string `json:"status"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// BookingController exposes availability checks and the booking
// workflow.
type BookingController struct {
	Bookings     *services.BookingWorkflow
	Availability *services.AvailabilityEngine
}

// CheckAvailability answers whether the service is free on the given
// calendar day.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	serviceID, err := parseID(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	available, err := bc.Availability.IsAvailable(serviceID, date)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	day := utils.NormalizeDate(date).Format("2006-01-02")
	message := fmt.Sprintf("Service is available on %s", day)
	if !available {
		message = fmt.Sprintf("Service is already booked on %s", day)
	}

	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"message":   message,
	})
}

// CreateBooking books a service for the authenticated user.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.Create(userID, services.CreateBookingInput{
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Price:     input.Price,
		Status:    input.Status,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns the caller's bookings, or all of them for an
// admin.
func (bc *BookingController) ListBookings(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)

	bookings, err := bc.Bookings.ListFor(userID, roleStr)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus flips a booking between confirmed and cancelled.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Bookings.SetStatus(bookingID, input.Status)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

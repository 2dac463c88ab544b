package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

type CreateLocationPayload struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type CreateHotelPayload struct {
	Name       string `json:"name" binding:"required"`
	LocationID *uint  `json:"location_id"`
}

type CreateRoomPayload struct {
	HotelID       uint   `json:"hotel_id" binding:"required"`
	RoomNumber    string `json:"room_number" binding:"required"`
	RoomType      string `json:"room_type" binding:"required"`
	PricePerNight int    `json:"price_per_night"`
	Capacity      int    `json:"capacity" binding:"required"`
}

// ListLocations (GET /api/locations)
func (ctrl *CatalogController) ListLocations(c *gin.Context) {
	locations, err := ctrl.CatalogSvc.ListLocations()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, locations)
}

// ListHotels (GET /api/hotels?location_id=)
func (ctrl *CatalogController) ListHotels(c *gin.Context) {
	var locationID *uint
	if raw := c.Query("location_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "location_id must be a positive integer")
			return
		}
		v := uint(id)
		locationID = &v
	}

	hotels, err := ctrl.CatalogSvc.ListHotels(locationID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// SearchRooms (GET /api/rooms/search?hotel_id=&check_in=&check_out=&min_capacity=)
func (ctrl *CatalogController) SearchRooms(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Query("hotel_id"))
	if err != nil || hotelID <= 0 {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "hotel_id must be a positive integer")
		return
	}
	minCapacity, err := strconv.Atoi(c.Query("min_capacity"))
	if err != nil || minCapacity <= 0 {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "min_capacity must be a positive integer")
		return
	}

	rooms, err := ctrl.CatalogSvc.SearchAvailableRooms(uint(hotelID), c.Query("check_in"), c.Query("check_out"), minCapacity)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateLocation (POST /api/locations)
func (ctrl *CatalogController) CreateLocation(c *gin.Context) {
	var payload CreateLocationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "invalid location payload: "+err.Error())
		return
	}

	location := models.Location{
		Name:    payload.Name,
		Address: payload.Address,
		City:    payload.City,
		Country: payload.Country,
	}
	if err := ctrl.CatalogSvc.CreateLocation(&location); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, location)
}

// CreateHotel (POST /api/hotels)
func (ctrl *CatalogController) CreateHotel(c *gin.Context) {
	var payload CreateHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "invalid hotel payload: "+err.Error())
		return
	}

	hotel := models.Hotel{Name: payload.Name, LocationID: payload.LocationID}
	if err := ctrl.CatalogSvc.CreateHotel(&hotel); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// CreateRoom (POST /api/rooms)
func (ctrl *CatalogController) CreateRoom(c *gin.Context) {
	var payload CreateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, string(services.KindValidation), "invalid room payload: "+err.Error())
		return
	}

	room := models.Room{
		HotelID:       payload.HotelID,
		RoomNumber:    payload.RoomNumber,
		RoomType:      models.RoomType(payload.RoomType),
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
	}
	if err := ctrl.CatalogSvc.CreateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

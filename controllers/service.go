// controllers/service.go
package controllers

import (
	"net/http"
	"path/filepath"

	"eventhub-backend/services"
	"eventhub-backend/storage"
	"eventhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       int      `json:"price" binding:"min=0"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Capacity    string   `json:"capacity"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Location    *string `json:"location"`
	Duration    *string `json:"duration"`
	Capacity    *string `json:"capacity"`
	Featured    *bool   `json:"featured"`
	Image       *string `json:"image"`
}

type ReorderImagesInput struct {
	Images []string `json:"images" binding:"required"`
}

// ServiceController exposes the catalog manager over HTTP.
type ServiceController struct {
	Catalog *services.CatalogManager
	Images  storage.ImageStore
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Catalog.Create(services.CreateServiceInput{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Location:    input.Location,
		Duration:    input.Duration,
		Capacity:    input.Capacity,
		Featured:    input.Featured,
		Image:       input.Image,
		Images:      input.Images,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Catalog.List()
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	service, err := sc.Catalog.Get(id)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Catalog.Update(id, services.UpdateServiceInput{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		Duration:    input.Duration,
		Capacity:    input.Capacity,
		Featured:    input.Featured,
		Image:       input.Image,
	})
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service that no booking references.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := sc.Catalog.Delete(id); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage stores a multipart image and appends it to the gallery.
func (sc *ServiceController) UploadImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	name := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := sc.Images.Save(name, file)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	service, err := sc.Catalog.AppendImage(id, url)
	if err != nil {
		// keep disk and gallery in step when the append is rejected
		sc.Images.Remove(name)
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// RemoveImage drops a gallery entry located by filename or URL.
func (sc *ServiceController) RemoveImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	service, err := sc.Catalog.RemoveImage(id, c.Param("name"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// ReorderImages atomically replaces the gallery order.
func (sc *ServiceController) ReorderImages(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input ReorderImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Catalog.ReorderImages(id, input.Images)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

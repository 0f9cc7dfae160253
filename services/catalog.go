package services

import (
	"log"
	"strings"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
)

// CreateServiceInput carries the fields of a new catalog entry.
type CreateServiceInput struct {
	Name        string
	Category    string
	Description string
	Price       int
	Rating      float64
	ReviewCount int
	Location    string
	Duration    string
	Capacity    string
	Featured    bool
	Image       string
	Images      []string
}

// UpdateServiceInput uses pointers so absent fields stay untouched.
type UpdateServiceInput struct {
	Name        *string
	Category    *string
	Description *string
	Price       *int
	Location    *string
	Duration    *string
	Capacity    *string
	Featured    *bool
	Image       *string
}

// CatalogManager owns service CRUD and the bounded gallery. Listing
// goes through the Redis cache when one is configured; every mutation
// invalidates it.
type CatalogManager struct {
	services storage.ServiceStore
	bookings storage.BookingStore
	images   storage.ImageStore
	cache    *storage.CatalogCache
}

func NewCatalogManager(
	services storage.ServiceStore,
	bookings storage.BookingStore,
	images storage.ImageStore,
	cache *storage.CatalogCache,
) *CatalogManager {
	return &CatalogManager{services: services, bookings: bookings, images: images, cache: cache}
}

func (m *CatalogManager) Create(input CreateServiceInput) (*models.Service, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" {
		return nil, apperr.New(apperr.Validation, "name, category and description are required")
	}
	if len(input.Images) > models.MaxGalleryImages {
		return nil, apperr.Newf(apperr.Validation, "gallery is limited to %d images", models.MaxGalleryImages)
	}

	service := &models.Service{
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
	}
	service.SetImageList(input.Images)

	if err := m.services.Create(service); err != nil {
		return nil, err
	}
	m.cache.Invalidate()
	return service, nil
}

func (m *CatalogManager) Get(id uint) (*models.Service, error) {
	return m.services.FindByID(id)
}

func (m *CatalogManager) List() ([]models.Service, error) {
	if cached, ok := m.cache.GetServices(); ok {
		return cached, nil
	}
	services, err := m.services.List()
	if err != nil {
		return nil, err
	}
	m.cache.SetServices(services)
	return services, nil
}

func (m *CatalogManager) Update(id uint, input UpdateServiceInput) (*models.Service, error) {
	service, err := m.services.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Location != nil {
		service.Location = *input.Location
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Capacity != nil {
		service.Capacity = *input.Capacity
	}
	if input.Featured != nil {
		service.Featured = *input.Featured
	}
	if input.Image != nil {
		service.Image = *input.Image
	}

	if err := m.services.Save(service); err != nil {
		return nil, err
	}
	m.cache.Invalidate()
	return service, nil
}

// Delete removes a service unless any booking, whatever its status,
// still references it.
func (m *CatalogManager) Delete(id uint) error {
	if _, err := m.services.FindByID(id); err != nil {
		return err
	}
	count, err := m.bookings.CountForService(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(apperr.Validation, "service has bookings and cannot be deleted")
	}
	if err := m.services.Delete(id); err != nil {
		return err
	}
	m.cache.Invalidate()
	return nil
}

// AppendImage adds a stored image URL at the tail of the gallery.
func (m *CatalogManager) AppendImage(id uint, url string) (*models.Service, error) {
	service, err := m.services.FindByID(id)
	if err != nil {
		return nil, err
	}

	gallery := service.ImageList()
	if len(gallery) >= models.MaxGalleryImages {
		return nil, apperr.Newf(apperr.Validation, "gallery is limited to %d images", models.MaxGalleryImages)
	}
	service.SetImageList(append(gallery, url))
	if service.Image == "" {
		service.Image = url
	}

	if err := m.services.Save(service); err != nil {
		return nil, err
	}
	m.cache.Invalidate()
	return service, nil
}

// RemoveImage locates a gallery entry by its filename or full URL and
// drops it, preserving the order of the rest. The stored file is
// removed best effort.
func (m *CatalogManager) RemoveImage(id uint, key string) (*models.Service, error) {
	service, err := m.services.FindByID(id)
	if err != nil {
		return nil, err
	}

	gallery := service.ImageList()
	kept := make([]string, 0, len(gallery))
	var removed string
	for _, url := range gallery {
		if removed == "" && matchesImageKey(url, key) {
			removed = url
			continue
		}
		kept = append(kept, url)
	}
	if removed == "" {
		return nil, apperr.New(apperr.NotFound, "image not found in gallery")
	}

	service.SetImageList(kept)
	if service.Image == removed {
		service.Image = ""
		if len(kept) > 0 {
			service.Image = kept[0]
		}
	}
	if err := m.services.Save(service); err != nil {
		return nil, err
	}
	m.cache.Invalidate()

	// The gallery entry is gone either way; losing the file is not
	// worth failing the request over.
	if m.images != nil {
		if err := m.images.Remove(removed); err != nil && !apperr.IsKind(err, apperr.NotFound) {
			log.Printf("Failed to remove image file %s: %v", removed, err)
		}
	}
	return service, nil
}

// ReorderImages replaces the gallery with a caller-supplied permutation
// of the current entries. Anything that is not a permutation fails.
func (m *CatalogManager) ReorderImages(id uint, order []string) (*models.Service, error) {
	service, err := m.services.FindByID(id)
	if err != nil {
		return nil, err
	}

	current := service.ImageList()
	if len(order) != len(current) {
		return nil, apperr.New(apperr.Validation, "order must contain every gallery image exactly once")
	}
	remaining := make(map[string]int, len(current))
	for _, url := range current {
		remaining[url]++
	}
	for _, url := range order {
		if remaining[url] == 0 {
			return nil, apperr.New(apperr.Validation, "order must contain every gallery image exactly once")
		}
		remaining[url]--
	}

	service.SetImageList(order)
	if err := m.services.Save(service); err != nil {
		return nil, err
	}
	m.cache.Invalidate()
	return service, nil
}

// matchesImageKey accepts either the full stored URL or just its
// trailing filename as the removal key.
func matchesImageKey(url, key string) bool {
	if url == key {
		return true
	}
	if idx := strings.LastIndexByte(url, '/'); idx >= 0 && url[idx+1:] == key {
		return true
	}
	return false
}

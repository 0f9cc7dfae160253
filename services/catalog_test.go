package services

import (
	"reflect"
	"testing"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
)

func newCatalogFixture(t *testing.T) (*CatalogManager, *fakeServiceStore, *fakeBookingStore) {
	t.Helper()
	services := newFakeServiceStore()
	bookings := newFakeBookingStore(services)
	manager := NewCatalogManager(services, bookings, nil, nil)
	return manager, services, bookings
}

func TestCreateServiceRequiresCoreFields(t *testing.T) {
	manager, _, _ := newCatalogFixture(t)

	if _, err := manager.Create(CreateServiceInput{Name: "x", Category: "halls"}); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("expected Validation, got %v", err)
	}

	svc, err := manager.Create(CreateServiceInput{
		Name: "Tamarind Tree", Category: "halls", Description: "Heritage venue", Price: 200000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if svc.ID == 0 {
		t.Fatal("service not persisted")
	}
}

func TestDeleteBlockedWhileBookingsExist(t *testing.T) {
	manager, services, bookings := newCatalogFixture(t)
	svc := seedService(t, services, "Bangalore Palace Convention Center", 150000)

	booking := &models.Booking{UserID: 1, ServiceID: svc.ID, Status: models.BookingCancelled}
	if err := bookings.Create(booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// even a cancelled booking blocks deletion
	if err := manager.Delete(svc.ID); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("expected Validation, got %v", err)
	}

	free := seedService(t, services, "Whitefield Conference Center", 50000)
	if err := manager.Delete(free.ID); err != nil {
		t.Fatalf("delete unbooked service: %v", err)
	}
	if _, err := manager.Get(free.ID); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("service still present after delete: %v", err)
	}
}

func TestGalleryAppendCapAndOrder(t *testing.T) {
	manager, services, _ := newCatalogFixture(t)
	svc := seedService(t, services, "Pixel Perfect Photography", 25000)

	want := []string{
		"/service-images/camera1.jpeg",
		"/service-images/camera2.jpeg",
		"/service-images/camera3.jpeg",
		"/service-images/camera4.jpeg",
	}
	for _, url := range want {
		if _, err := manager.AppendImage(svc.ID, url); err != nil {
			t.Fatalf("append %s: %v", url, err)
		}
	}

	updated, err := manager.Get(svc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := updated.ImageList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("gallery order = %v, want %v", got, want)
	}

	if _, err := manager.AppendImage(svc.ID, "/service-images/camera5.jpeg"); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("expected Validation beyond cap, got %v", err)
	}
}

func TestGalleryRemoveByFilename(t *testing.T) {
	manager, services, _ := newCatalogFixture(t)
	svc := seedService(t, services, "Cinematic Moments", 45000)

	for _, url := range []string{"/service-images/a.jpeg", "/service-images/b.jpeg", "/service-images/c.jpeg"} {
		if _, err := manager.AppendImage(svc.ID, url); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	updated, err := manager.RemoveImage(svc.ID, "b.jpeg")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := []string{"/service-images/a.jpeg", "/service-images/c.jpeg"}
	if got := updated.ImageList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("gallery = %v, want %v", got, want)
	}

	if _, err := manager.RemoveImage(svc.ID, "missing.jpeg"); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGalleryReorderMustBePermutation(t *testing.T) {
	manager, services, _ := newCatalogFixture(t)
	svc := seedService(t, services, "Mysore Silk Decorators", 35000)

	urls := []string{"/service-images/d1.jpeg", "/service-images/d2.jpeg", "/service-images/d3.jpeg"}
	for _, url := range urls {
		if _, err := manager.AppendImage(svc.ID, url); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	reordered, err := manager.ReorderImages(svc.ID, []string{urls[2], urls[0], urls[1]})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	want := []string{urls[2], urls[0], urls[1]}
	if got := reordered.ImageList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("gallery = %v, want %v", got, want)
	}

	// missing entry, foreign entry, duplicate
	bad := [][]string{
		{urls[0], urls[1]},
		{urls[0], urls[1], "/service-images/x.png"},
		{urls[0], urls[0], urls[1]},
	}
	for _, order := range bad {
		if _, err := manager.ReorderImages(svc.ID, order); !apperr.IsKind(err, apperr.Validation) {
			t.Fatalf("order %v: expected Validation, got %v", order, err)
		}
	}
}

func TestFirstGalleryImageBecomesCover(t *testing.T) {
	manager, services, _ := newCatalogFixture(t)
	svc := seedService(t, services, "Simple Elegance Decorators", 20000)

	if _, err := manager.AppendImage(svc.ID, "/service-images/cover.jpeg"); err != nil {
		t.Fatalf("append: %v", err)
	}
	updated, _ := manager.Get(svc.ID)
	if updated.Image != "/service-images/cover.jpeg" {
		t.Fatalf("cover image = %q", updated.Image)
	}

	removed, err := manager.RemoveImage(svc.ID, "cover.jpeg")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Image != "" {
		t.Fatalf("cover should clear with the last image, got %q", removed.Image)
	}
}

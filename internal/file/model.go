package file

import (
	"net/http"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrRoomNotFound = apperror.New(http.StatusNotFound, "room not found")
)

// Photo is an uploaded room photo. StoragePath and ThumbnailPath are
// internal storage locations, never exposed over the API.
type Photo struct {
	ID            string
	RoomID        string
	UserID        *string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public download path for a photo.
func URL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public path for a photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}

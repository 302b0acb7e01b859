package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/file"
)

type PhotoResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *file.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		RoomID:      p.RoomID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         file.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		url := file.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &url
	}
	return resp
}

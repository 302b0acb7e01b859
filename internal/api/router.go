package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stayforge/hotel-booking-backend/internal/amenity"
	amenityHttp "github.com/stayforge/hotel-booking-backend/internal/amenity/http"
	"github.com/stayforge/hotel-booking-backend/internal/auth"
	"github.com/stayforge/hotel-booking-backend/internal/bill"
	billHttp "github.com/stayforge/hotel-booking-backend/internal/bill/http"
	"github.com/stayforge/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/stayforge/hotel-booking-backend/internal/booking/http"
	"github.com/stayforge/hotel-booking-backend/internal/branch"
	branchHttp "github.com/stayforge/hotel-booking-backend/internal/branch/http"
	"github.com/stayforge/hotel-booking-backend/internal/file"
	fileHttp "github.com/stayforge/hotel-booking-backend/internal/file/http"
	"github.com/stayforge/hotel-booking-backend/internal/guest"
	guestHttp "github.com/stayforge/hotel-booking-backend/internal/guest/http"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	roomHttp "github.com/stayforge/hotel-booking-backend/internal/room/http"
	"github.com/stayforge/hotel-booking-backend/internal/roomtype"
	roomtypeHttp "github.com/stayforge/hotel-booking-backend/internal/roomtype/http"
	"github.com/stayforge/hotel-booking-backend/internal/user"
	userHttp "github.com/stayforge/hotel-booking-backend/internal/user/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService     user.Service
	GuestService    guest.Service
	BranchService   branch.Service
	RoomTypeService roomtype.Service
	RoomService     room.Service
	BookingService  booking.Service
	AmenityService  amenity.Service
	BillService     bill.Service
	FileService     file.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware and registers every module's routes under
// /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	userHandler := userHttp.NewHandler(cfg.UserService)
	guestHandler := guestHttp.NewHandler(cfg.GuestService)
	branchHandler := branchHttp.NewHandler(cfg.BranchService)
	roomtypeHandler := roomtypeHttp.NewHandler(cfg.RoomTypeService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	amenityHandler := amenityHttp.NewHandler(cfg.AmenityService)
	billHandler := billHttp.NewHandler(cfg.BillService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		guestHttp.RegisterRoutes(v1, guestHandler, authMiddleware)
		branchHttp.RegisterRoutes(v1, branchHandler, authMiddleware, adminMiddleware)
		roomtypeHttp.RegisterRoutes(v1, roomtypeHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		amenityHttp.RegisterRoutes(v1, amenityHandler, authMiddleware, adminMiddleware)
		billHttp.RegisterRoutes(v1, billHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware, adminMiddleware)
	}

	return r
}

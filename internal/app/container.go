package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayforge/hotel-booking-backend/internal/amenity"
	"github.com/stayforge/hotel-booking-backend/internal/api"
	"github.com/stayforge/hotel-booking-backend/internal/auth"
	"github.com/stayforge/hotel-booking-backend/internal/bill"
	"github.com/stayforge/hotel-booking-backend/internal/booking"
	"github.com/stayforge/hotel-booking-backend/internal/branch"
	"github.com/stayforge/hotel-booking-backend/internal/file"
	"github.com/stayforge/hotel-booking-backend/internal/guest"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/storage"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	"github.com/stayforge/hotel-booking-backend/internal/roomtype"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module together.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage failed: %w", err)
	}

	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	guestRepo := guest.NewPgxRepository(cfg.DBPool)
	guestService := guest.NewService(guestRepo)

	branchRepo := branch.NewPgxRepository(cfg.DBPool)
	branchService := branch.NewService(branchRepo)

	roomtypeRepo := roomtype.NewPgxRepository(cfg.DBPool)
	roomtypeService := roomtype.NewService(roomtypeRepo)

	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, branchService, roomtypeService)

	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, guestService, userService)

	amenityRepo := amenity.NewPgxRepository(cfg.DBPool)
	amenityService := amenity.NewService(amenityRepo, bookingService)

	billRepo := bill.NewPgxRepository(cfg.DBPool)
	billService := bill.NewService(billRepo, bookingService, roomService, userService, amenityService)

	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store, roomService)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		GuestService:    guestService,
		BranchService:   branchService,
		RoomTypeService: roomtypeService,
		RoomService:     roomService,
		BookingService:  bookingService,
		AmenityService:  amenityService,
		BillService:     billService,
		FileService:     fileService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}

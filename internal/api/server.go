package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/communitydesk/eventdesk/docs"
	v1 "github.com/communitydesk/eventdesk/internal/api/handler/v1"
	"github.com/communitydesk/eventdesk/internal/api/middleware"
	"github.com/communitydesk/eventdesk/internal/auth"
	"github.com/communitydesk/eventdesk/internal/cache"
	"github.com/communitydesk/eventdesk/internal/config"
	"github.com/communitydesk/eventdesk/internal/repository"
	"github.com/communitydesk/eventdesk/internal/repository/dao"
	"github.com/communitydesk/eventdesk/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, redis *cache.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	sessions := auth.NewSessionStore(redis)
	authHandler := s.initAuthHandler(db, sessions)
	userHandler := s.initUserHandler(db)
	eventHandler := s.initEventHandler(db)
	bookingHandler := s.initBookingHandler(db)
	s.MountHandlers(sessions, authHandler, userHandler, eventHandler, bookingHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB, sessions *auth.SessionStore) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc, sessions)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	svc := service.NewEventService(eventRepo)
	attendeeSvc := service.NewBookingService(bookingRepo, eventRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	return v1.NewEventHandler(svc, attendeeSvc, uSvc)
}

func (s *Server) initBookingHandler(db *gorm.DB) *v1.BookingHandler {
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewBookingService(bookingRepo, eventRepo)

	return v1.NewBookingHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	sessions *auth.SessionStore,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	bookingHandler *v1.BookingHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, sessions)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/users", userHandler.HandleListUsers)
		public.POST("/users", userHandler.HandleCreateUser)
		public.GET("/users/attendance", userHandler.HandleUserAttendance)

		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.GET("/events/:eventID/attendees", eventHandler.HandleListAttendees)

		public.GET("/bookings", bookingHandler.HandleListBookings)
		public.POST("/bookings", bookingHandler.HandleCreateBooking)
		public.DELETE("/bookings", bookingHandler.HandleCancelBooking)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.POST("/auth/logout", authHandler.HandleLogout)
		protected.POST("/events", eventHandler.HandleCreateEvent)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Eventdesk API"
	docs.SwaggerInfo.Description = "Event registration and attendance API for community organizations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

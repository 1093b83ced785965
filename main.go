package main

import (
	"context"
	"os"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/config"
	"github.com/joeyave/scala-booking/controller"
	"github.com/joeyave/scala-booking/migrations"
	"github.com/joeyave/scala-booking/ratelimit"
	"github.com/joeyave/scala-booking/repository"
	"github.com/joeyave/scala-booking/service"
	"github.com/joeyave/scala-booking/templates"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config.")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.MongoDBURI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating mongo client.")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to mongo.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = migrations.EnsureIndexes(ctx, mongoClient, cfg.MongoDBName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error ensuring indexes.")
	}

	counterRepository := repository.NewCounterRepository(mongoClient, cfg.MongoDBName)
	userRepository := repository.NewUserRepository(mongoClient, cfg.MongoDBName)
	profileRepository := repository.NewProfileRepository(mongoClient, cfg.MongoDBName)
	membershipRepository := repository.NewMembershipRepository(mongoClient, cfg.MongoDBName, counterRepository)
	teamRepository := repository.NewTeamRepository(mongoClient, cfg.MongoDBName, counterRepository)
	eventTypeRepository := repository.NewEventTypeRepository(mongoClient, cfg.MongoDBName)
	customInputRepository := repository.NewCustomInputRepository(mongoClient, cfg.MongoDBName, counterRepository)
	attributeRepository := repository.NewAttributeRepository(mongoClient, cfg.MongoDBName)
	bookingRepository := repository.NewBookingRepository(mongoClient, cfg.MongoDBName)

	userService := service.NewUserService(userRepository, profileRepository, membershipRepository)
	teamService := service.NewTeamService(teamRepository, membershipRepository)
	eventTypeService := service.NewEventTypeService(eventTypeRepository, customInputRepository, membershipRepository, userService, repository.NewTransactor(mongoClient))
	attributeService := service.NewOrganizationAttributeService(attributeRepository)
	publicEventService := service.NewPublicEventService(teamRepository, userRepository, eventTypeRepository)
	teamPageService := service.NewTeamPageService(teamRepository, eventTypeRepository, bookingRepository, publicEventService)

	routerConfig := controller.RouterConfig{
		Templates: templates.New(),
		Guards: &controller.Guards{
			JWTSecret:   cfg.JWTSecret,
			UserService: userService,
			TeamService: teamService,
		},
		RateLimitPerWindow: cfg.RateLimitPerMinute,
		RateLimitWindow:    cfg.RateLimitWindow,
		OrganizationAttributes: &controller.OrganizationAttributesController{
			AttributeService: attributeService,
		},
		EventTypes: &controller.EventTypeController{
			EventTypeService: eventTypeService,
		},
		BookingPages: &controller.BookingPageController{
			TeamPageService: teamPageService,
			TeamService:     teamService,
			AppName:         cfg.AppName,
			WebsiteURL:      cfg.WebsiteURL,
		},
	}

	if cfg.RedisURL != "" {
		rateLimiter, err := ratelimit.NewRateLimiter(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to redis.")
		}
		defer rateLimiter.Close()
		routerConfig.RateLimiter = rateLimiter
	} else {
		log.Warn().Msg("REDIS_URL is not set, rate limiting is disabled.")
	}

	r := controller.NewRouter(routerConfig)

	log.Info().Str("port", cfg.Port).Msg("Starting server.")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped.")
	}
}

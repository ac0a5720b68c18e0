package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"bbq-enquiry/configs"
	httpAdapter "bbq-enquiry/internal/adapters/input/http"
	"bbq-enquiry/internal/adapters/output/knowledge"
	"bbq-enquiry/internal/adapters/output/memory"
	"bbq-enquiry/internal/adapters/output/postgres"
	redisAdapter "bbq-enquiry/internal/adapters/output/redis"
	"bbq-enquiry/internal/application"
	"bbq-enquiry/internal/ports/output"
	gormDriver "bbq-enquiry/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type config struct {
	ENV string `mapstructure:"env"`
}

const defaultSessionTimeout = 30 * time.Minute

// ServeHTTP func
func ServeHTTP() error {
	if err := godotenv.Load(); err != nil {
		logrus.Debugln("No .env file found, relying on environment")
	}
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	conf := configs.GetViper()

	// Knowledge store, seeded from the checked-in outlet file plus the
	// configured city-to-location map
	cityNames := make([]string, 0, len(conf.Cities))
	outletsByCity := make(map[string][]string, len(conf.Cities))
	for _, city := range conf.Cities {
		cityNames = append(cityNames, city.Name)
		outletsByCity[strings.ToLower(city.Name)] = city.Locations
	}
	knowledgeStore, err := knowledge.NewStore(cityNames, outletsByCity, conf.Chain.KnowledgeFile)
	if err != nil {
		return err
	}

	timeout := time.Duration(conf.Session.TimeoutMinutes) * time.Minute
	if timeout <= 0 {
		timeout = defaultSessionTimeout
	}

	// Session store backend, in-memory unless redis is configured
	var sessions output.SessionStore
	var redisClient *goredis.Client
	if conf.Session.Backend == "redis" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return err
		}
		sessions = redisAdapter.NewRedisSessionStore(redisClient, timeout)
	} else {
		sessions = memory.NewMemorySessionStore(timeout)
	}

	// Booking repository, in-memory unless postgres is configured
	var bookings output.BookingRepository
	var dbConGorm *gormDriver.DB
	if conf.Postgres.Enabled {
		dbConGorm, err = gormDriver.ConnectToPostgreSQL(
			conf.Postgres.Host,
			conf.Postgres.Port,
			conf.Postgres.Username,
			conf.Postgres.Password,
			conf.Postgres.DbName,
			conf.Postgres.SSLMode,
		)
		if err != nil {
			return err
		}
		bookings = postgres.NewBookingRepository(dbConGorm.Postgres)
	} else {
		bookings = memory.NewMemoryBookingRepository()
	}

	analyses := memory.NewMemoryAnalysisStore()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			if dbConGorm != nil {
				gormDriver.DisconnectPostgres(dbConGorm.Postgres)
			}
			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Println("Error when closing redis: ", err)
				}
			}
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Application services (use cases)
	engine := application.NewDialogueEngine(knowledgeStore, bookings, conf.Chain.Name)
	chatSrv := application.NewChatService(sessions, engine)
	knowledgeSrv := application.NewKnowledgeService(knowledgeStore)
	postCallSrv := application.NewPostCallService(analyses)

	// Input adapters (HTTP handlers)
	var db *gorm.DB
	if dbConGorm != nil {
		db = dbConGorm.Postgres
	}
	hdl := httpAdapter.New(knowledgeSrv, postCallSrv, db, conf.Analytics.ExportDir)
	chatHdl := httpAdapter.NewChatHandler(chatSrv)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	chatbot := app.Group("/api/chatbot")
	{
		chatbot.Post("/chat", chatHdl.HandleChat)
		chatbot.Get("/restaurants/:city", hdl.GetRestaurants)
		chatbot.Get("/restaurant/:name", hdl.GetRestaurantInfo)
		chatbot.Get("/restaurant/:name/menu", hdl.GetRestaurantMenu)
		chatbot.Get("/restaurant/:name/faq", hdl.GetRestaurantFaq)
	}

	knowledgeGroup := app.Group("/api/knowledge")
	{
		knowledgeGroup.Get("/cities", hdl.ListCities)
		knowledgeGroup.Get("/restaurants", hdl.GetAllRestaurants)
		knowledgeGroup.Get("/search", hdl.SearchKnowledge)
	}

	postCall := app.Group("/api/post-call")
	{
		postCall.Post("/analyze", hdl.AnalyzeCall)
		postCall.Get("/analysis/:session_id", hdl.GetCallAnalysis)
		postCall.Get("/analyses", hdl.ListCallAnalyses)
		postCall.Get("/metrics", hdl.GetMetrics)
		postCall.Get("/pending-actions", hdl.GetPendingActions)
		postCall.Get("/export", hdl.ExportAnalyses)
	}

	err = app.Listen(":" + conf.App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", conf.App.Port)
	return nil
}

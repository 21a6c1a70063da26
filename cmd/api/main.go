package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/moodcalendar/internal/api"
	"github.com/limbo/moodcalendar/internal/cache"
	"github.com/limbo/moodcalendar/internal/repository"
	"github.com/limbo/moodcalendar/internal/service"
	"github.com/limbo/moodcalendar/pkg/cleanup"
	"github.com/limbo/moodcalendar/pkg/config"
	jwtservice "github.com/limbo/moodcalendar/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

// monthCache returns nil when REDIS_ADDRESS is empty, which turns caching off.
func monthCache(cfg *config.Config) service.MonthCacheI {
	address := cfg.GetString("REDIS_ADDRESS")
	if address == "" {
		slog.Info("month cache disabled")
		return nil
	}
	return cache.NewMonthCache(cache.RedisCfg{
		Address:  address,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	}, cfg.GetDuration("MONTH_CACHE_TTL", 10*time.Minute))
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	defer cleanup.CleanUp()

	mc := monthCache(cfg)
	logsRepo := repository.NewDailyLogsRepoWithConn(pool)
	eventsRepo := repository.NewEventsRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		CalendarService: service.NewCalendarService(logsRepo, eventsRepo, mc),
		LogsService:     service.NewDailyLogsService(logsRepo, mc),
		EventsService:   service.NewEventsService(eventsRepo, repository.NewSubEventsRepoWithConn(pool), mc),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTTL)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

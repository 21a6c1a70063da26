package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/moodcalendar/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	calendarService service.CalendarServiceI
	logsService     service.DailyLogsServiceI
	eventsService   service.EventsServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	CalendarService service.CalendarServiceI
	LogsService     service.DailyLogsServiceI
	EventsService   service.EventsServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		calendarService: servicesOptions.CalendarService,
		logsService:     servicesOptions.LogsService,
		eventsService:   servicesOptions.EventsService,
		jwtService:      servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)

	s.mx.Group(func(r chi.Router) {
		r.Use(s.OptionalAuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/get_month", s.GetMonth)
		r.Get("/get_year", s.GetYear)

		r.Post("/mood/update", s.UpdateMood)
		r.Post("/mood/marker/toggle", s.ToggleMarker)

		r.Get("/events", s.GetDayEvents)
		r.Post("/events", s.CreateEvent)
		r.Get("/events/month", s.GetMonthEvents)
		r.Put("/events/{id}", s.UpdateEvent)
		r.Delete("/events/{id}", s.DeleteEvent)
		r.Post("/events/{id}/subevents", s.CreateSubEvent)
		r.Get("/events/subevents/{id}", s.GetSubEvent)
		r.Put("/events/subevents/{id}", s.UpdateSubEvent)
		r.Delete("/events/subevents/{id}", s.DeleteSubEvent)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return <-errCh
}

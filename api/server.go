package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binayakjoshi/furever-sub000/reminder"
	"github.com/binayakjoshi/furever-sub000/store"
	"github.com/binayakjoshi/furever-sub000/vets"
)

// Version is the server build version, overridden at build time with
// -ldflags "-X github.com/binayakjoshi/furever-sub000/api.Version=...".
var Version = "devel"

// Server serves the furever API over HTTP.
type Server struct {
	server     *http.Server
	mongoStore store.FureverStore
	finder     vets.Finder
	reminder   *reminder.Scheduler
	traceMode  bool
}

func NewServer(mongoStore store.FureverStore, finder vets.Finder, reminderScheduler *reminder.Scheduler, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		finder:     finder,
		reminder:   reminderScheduler,
		traceMode:  traceMode,
	}
}

// Run starts the server and blocks until it shuts down.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}
	s.server = srv

	return srv.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/api")
	apiRoute.POST("/vets/nearby", s.nearbyVets)
	apiRoute.POST("/reminders/run", s.runReminders)
	apiRoute.GET("/accounts/:accountID/vaccinations/upcoming", s.upcomingVaccinations)

	return r
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorMessageInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version,
	})
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
	"github.com/nguyentantai21042004/meetscribe/internal/meeting"
	"github.com/nguyentantai21042004/meetscribe/internal/pipeline"
)

type Options struct {
	Addr           string
	CORSOrigins    []string
	MaxUploadBytes int64
	MaxConcurrent  int
}

type implServer struct {
	opts     Options
	pipeline pipeline.Pipeline
	meetings meeting.Repository
	logger   logger.Logger
	sem      *semaphore
	router   *gin.Engine
}

// New creates the HTTP server. meetings may be nil, which disables the
// meeting history routes and persistence of processed uploads.
func New(opts Options, pipe pipeline.Pipeline, meetings meeting.Repository, log logger.Logger) Server {
	s := &implServer{
		opts:     opts,
		pipeline: pipe,
		meetings: meetings,
		logger:   log,
		sem:      newSemaphore(opts.MaxConcurrent),
	}
	s.router = s.setupRoutes()
	return s
}

func (s *implServer) Handler() http.Handler {
	return s.router
}

func (s *implServer) setupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.accessLog())

	if len(s.opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     s.opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/", s.handleRoot)
	router.GET("/healthz", s.handleHealth)

	v1 := router.Group("/api/v1")
	v1.POST("/process", s.handleProcess)
	v1.POST("/transcribe", s.handleTranscribe)
	v1.POST("/summarize", s.handleSummarize)

	if s.meetings != nil {
		v1.GET("/meetings", s.handleListMeetings)
		v1.GET("/meetings/:id", s.handleGetMeeting)
	}

	return router
}

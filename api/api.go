package api

import (
	"alphalab/internal/domain"
	"alphalab/internal/logger"
	"alphalab/internal/service"
	"alphalab/internal/util"
	"alphalab/pkg/backtester"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BacktestSubmitter interface {
	Submit(ctx context.Context, cfg backtester.BacktestConfig, dryRun bool) (*backtester.Submission, error)
}

type ApiHandler struct {
	AlphaService      service.AlphaService
	EvaluationService service.EvaluationService
	BacktestClient    BacktestSubmitter
	// request bodies are applied on top of these
	Config util.PipelineConfig
	// Close releases whatever the handler's repositories hold open
	Close func() error
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to alphalab"})
	})
	router.POST("/alphas", m.computeAlphas)
	router.POST("/evaluate", m.evaluate)
	router.POST("/backtest", m.submitBacktest)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// statusForError maps pipeline errors onto http codes. anything that is
// not a data problem is on us
func statusForError(err error) int {
	if errors.As(err, &domain.MissingDataError{}) || errors.As(err, &domain.DegenerateStatisticsError{}) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err, "status", code)
	} else {
		log.Warnw("request rejected", "error", err, "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware gives every request its own logger and profile.
// handlers read both back off the request context
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(c.Request.Context()).With(
		"requestId", requestID,
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	profile, endProfile := domain.NewProfile()
	ctx := logger.NewContext(c.Request.Context(), log)
	ctx = domain.NewCtxWithProfile(ctx, profile)
	c.Request = c.Request.WithContext(ctx)

	start := time.Now().UTC()
	c.Next()
	endProfile()

	log.Infow(
		"handled request",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"profile", profile,
	)
}

// newStageContext opens a span on the request profile and hands the
// service a sub profile nested under it
func newStageContext(c *gin.Context, name string) (context.Context, func()) {
	profile, _ := domain.GetProfile(c.Request.Context())
	span, endSpan := profile.StartNewSpan(name)
	return domain.NewCtxWithSubProfile(c.Request.Context(), span), endSpan
}

func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return util.ParseDate(s)
}

package api

import (
	"fmt"
	"time"

	"stocksuggest/internal/app"
	"stocksuggest/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	SuggestionHandler app.SuggestionHandler
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stocksuggest"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "healthy"})
	})
	router.POST("/api/v1/suggestPortfolio", m.suggestPortfolio)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Set("requestID", requestID.String())

	start := time.Now().UTC()
	ctx.Next()

	logger.Info(fmt.Sprintf(
		"%s %s -> %d (%dms) requestID=%s",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
		requestID,
	))
}

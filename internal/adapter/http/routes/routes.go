package routes

import (
	"log"
	"strconv"

	_ "github.com/MAZTEK-CODENIGHT/backend/docs" // This will be auto-generated
	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/http/handlers"
	"github.com/MAZTEK-CODENIGHT/backend/internal/adapter/persistence/repository"
	"github.com/MAZTEK-CODENIGHT/backend/internal/infrastructure/database"
	"github.com/MAZTEK-CODENIGHT/backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	billingRepo := repository.NewBillingDynamoRepository(ddb)

	billUseCase := usecase.NewBillUseCase(billingRepo)
	anomalyUseCase := usecase.NewAnomalyUseCase(billingRepo)
	whatIfUseCase := usecase.NewWhatIfUseCase(billingRepo)

	billHandler := handlers.NewBillHandler(billUseCase)
	analysisHandler := handlers.NewAnalysisHandler(anomalyUseCase)
	whatIfHandler := handlers.NewWhatIfHandler(whatIfUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, billHandler, analysisHandler, whatIfHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines can be correlated. An inbound
// X-Request-ID is trusted when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

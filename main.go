package main

import (
	"fmt"
	"os"
	"time"

	_uuid "github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"salesdesk/controller"
	"salesdesk/model"
	"salesdesk/platform"
	"salesdesk/service"
	"salesdesk/store"
)

// CORSMiddleware ...
// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

// RequestIDMiddleware ...
// Generate a unique ID and attach it to each request for future reference or use
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := _uuid.New()
		c.Writer.Header().Set("X-Request-Id", uuid.String())
		c.Set("requestId", uuid.String())
		c.Next()
	}
}

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		logrus.Infof(
			" [%s] %d | %v | %s | %s | %s | %s ",
			c.GetString("requestId"),
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			path,
			c.Request.UserAgent(),
		)
	}
}

func main() {
	fmt.Println("Server started...")

	//Load the .env file
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("failed to load the env file")
	}

	logger := platform.Logger

	var st store.Store
	if os.Getenv("SQL_HOST") == "" {
		logger.Warn("SQL_HOST is not set, using in-memory storage")
		st = store.NewMemStore()
	} else {
		platform.InitDB()
		model.InstallDB()
		st = store.NewGormStore(platform.DB)
	}

	platform.InitLLMClient()
	llmModel := platform.LLMModel()

	salesChat := &service.ChatService{
		Convs:   st.Sales(),
		Client:  platform.LLMClient,
		Persona: service.SalesPersona,
		Model:   llmModel,
	}
	csChat := &service.ChatService{
		Convs:   st.CS(),
		Client:  platform.LLMClient,
		Persona: service.CSPersona,
		Model:   llmModel,
	}
	gen := &service.GenerateService{Client: platform.LLMClient, Model: llmModel}

	userCtrl := controller.UserController{
		Svc:    &service.UserService{Store: st},
		Tokens: &service.TokenService{},
	}
	tokenAuth := func(c *gin.Context) {
		userCtrl.TokenValid(c)
		c.Next()
	}

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LogMiddleware())

	api := r.Group("/api")
	{
		api.POST("/users/register", userCtrl.Register)
		api.POST("/users/login", userCtrl.Login)
		api.GET("/users/me", tokenAuth, userCtrl.Me)

		deals := controller.DealController{Store: st}
		api.GET("/deals", deals.List)
		api.GET("/deals/:id", deals.Get)
		api.POST("/deals", deals.Create)
		api.PATCH("/deals/:id", deals.Update)
		api.DELETE("/deals/:id", deals.Delete)

		salesConvs := controller.ConversationController{Convs: st.Sales()}
		salesMsgs := controller.ChatController{Svc: salesChat}
		api.GET("/conversations", salesConvs.List)
		api.POST("/conversations", salesConvs.Create)
		api.DELETE("/conversations/:id", salesConvs.Delete)
		api.GET("/conversations/:id/messages", salesConvs.ListMessages)
		api.POST("/conversations/:id/messages", salesMsgs.SendMessage)

		csConvs := controller.ConversationController{Convs: st.CS()}
		csMsgs := controller.ChatController{Svc: csChat}
		api.GET("/cs/conversations", csConvs.List)
		api.POST("/cs/conversations", csConvs.Create)
		api.DELETE("/cs/conversations/:id", csConvs.Delete)
		api.GET("/cs/conversations/:id/messages", csConvs.ListMessages)
		api.POST("/cs/conversations/:id/messages", csMsgs.SendMessage)

		knowledge := controller.KnowledgeController{Store: st, Svc: &service.KnowledgeService{Store: st}}
		api.GET("/knowledge-files", knowledge.List)
		api.GET("/knowledge-files/:id", knowledge.Get)
		api.POST("/knowledge-files", knowledge.Create)
		api.DELETE("/knowledge-files/:id", knowledge.Delete)
		api.POST("/knowledge-files/import", knowledge.Import)
		api.GET("/knowledge-files/:id/html", knowledge.RenderHTML)

		sop := controller.SopController{Store: st}
		api.GET("/sop-steps", sop.List)
		api.POST("/sop-steps", sop.Create)
		api.PATCH("/sop-steps/:id", sop.Update)

		tasks := controller.TaskController{Store: st}
		api.GET("/tasks", tasks.List)
		api.POST("/tasks", tasks.Create)
		api.PATCH("/tasks/:id", tasks.Update)
		api.DELETE("/tasks/:id", tasks.Delete)

		reflections := controller.ReflectionController{Store: st}
		api.GET("/reflections", reflections.List)
		api.GET("/reflections/date/:date", reflections.GetByDate)
		api.POST("/reflections", reflections.Create)
		api.PATCH("/reflections/:id", reflections.Update)
		api.DELETE("/reflections/:id", reflections.Delete)

		qualifications := controller.QualificationController{Store: st, Gen: gen}
		api.GET("/qualifications", qualifications.List)
		api.POST("/qualifications", qualifications.Create)
		api.PATCH("/qualifications/:id", qualifications.Update)
		api.DELETE("/qualifications/:id", qualifications.Delete)
		api.POST("/qualifications/analyze", qualifications.Analyze)

		palette := controller.PaletteController{Gen: gen}
		api.POST("/color-palette/generate", palette.Generate)

		referrals := controller.ReferralController{Store: st}
		api.GET("/referrals", referrals.List)
		api.POST("/referrals", referrals.Create)
		api.PATCH("/referrals/:id", referrals.Update)
		api.DELETE("/referrals/:id", referrals.Delete)

		analyses := controller.AnalysisController{Store: st, Gen: gen}
		api.GET("/analyses", analyses.List)
		api.POST("/analyses", analyses.Create)
		api.PATCH("/analyses/:id", analyses.Update)
		api.DELETE("/analyses/:id", analyses.Delete)
		api.POST("/analyses/generate", analyses.Generate)

		stats := controller.StatsController{Svc: &service.StatsService{Store: st}}
		api.GET("/dashboard/stats", stats.Dashboard)
	}

	cr := cron.New()
	cr.AddFunc("0 7 * * *", func() {
		service.SendPipelineDigest(st)
	})
	cr.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	r.Run(":" + port)
}

package main

import (
	"context"
	"time"

	"sheet-template-api/config"
	"sheet-template-api/internal/audit"
	"sheet-template-api/internal/health"
	"sheet-template-api/internal/llm"
	"sheet-template-api/internal/logger"
	"sheet-template-api/internal/middlewares"
	"sheet-template-api/internal/schema"
	"sheet-template-api/internal/schemagen"
	"sheet-template-api/internal/template"
	"sheet-template-api/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.AutoMigrate(&template.Template{}, &template.ComponentSchema{}, &audit.TemplateAuditLog{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	if err := audit.AttachTemplateForeignKey(db); err != nil {
		log.WithError(err).Fatal("Failed to link audit log to templates")
	}

	ctx := context.Background()
	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("text generation unavailable, schemas will use the structural fallback")
		provider = llm.UnavailableProvider{}
	}
	log.WithField("provider", provider.Name()).Info("schema inference configured")

	generator := &schemagen.Generator{Provider: provider, Timeout: cfg.AITimeout, Log: log}
	uploadService := &upload.UploadService{
		Generator:   generator,
		Concurrency: cfg.SchemaConcurrency,
		Log:         log,
	}
	if cfg.UploadBucket != "" {
		uploadService.Archive = &upload.GCSArchiver{Bucket: cfg.UploadBucket}
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.ErrorHandler(log))
	r.Use(middlewares.ActorMiddleware(cfg.JWTSecret))

	health.RegisterRoutes(r, &health.HealthService{DB: db, AIProvider: provider.Name()}, log)
	upload.RegisterRoutes(r, uploadService, cfg.UploadsDir)
	template.RegisterRoutes(r, &template.TemplateService{DB: db, Log: log})
	audit.RegisterRoutes(r, &audit.AuditService{DB: db})
	schema.RegisterRoutes(r, &schema.SchemaService{})
	r.NoRoute(middlewares.NotFound())

	log.Infof("Starting server on 0.0.0.0:%s ...", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"clinica/config"
	_ "clinica/docs"
	"clinica/internal/repository"
	"clinica/internal/service"
	"clinica/internal/storage"
	"clinica/internal/transport/rest"
	"clinica/pkg/database"
	"clinica/pkg/logger"
	"clinica/pkg/mailer"
)

// @title API de Clínica
// @version 1.0
// @description API de gestión de clínica: pacientes, doctores, consultorios, asignaciones mensuales, citas e historias clínicas.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// El .env es opcional; en producción la configuración llega por entorno.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	defer db.Close()

	log.Info("ejecutando migraciones")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("error al ejecutar las migraciones", zap.Error(err))
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("no se pudo inicializar el almacenamiento S3", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("almacenamiento S3 inicializado", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("almacenamiento S3 no configurado, la carga de archivos de estudios no estará disponible")
	}

	var mail mailer.Mailer
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
		log.Info("correo SMTP configurado", zap.String("host", cfg.SMTP.Host))
	} else {
		mail = mailer.NoopMailer{}
		log.Warn("SMTP no configurado, las notificaciones por correo se descartan")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Mailer:      mail,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	log.Info("servidor iniciado", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("apagando el servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("error al detener el servidor", zap.Error(err))
	}

	log.Info("servidor detenido")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tiservices/backoffice-api/internal/application/auth"
	"github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/application/usecase"
	"github.com/tiservices/backoffice-api/internal/infrastructure/excel"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
	infrapdf "github.com/tiservices/backoffice-api/internal/infrastructure/pdf"
	"github.com/tiservices/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/tiservices/backoffice-api/internal/interfaces/http"
	"github.com/tiservices/backoffice-api/pkg/config"
	"github.com/tiservices/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(os.Stdout, logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("level", cfg.App.LogLevel).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	colaboradorRepo := postgres.NewColaboradorRepository(pool)
	herramientaRepo := postgres.NewHerramientaRepository(pool)
	guiaRepo := postgres.NewGuiaRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := inventory.NewItemUseCase(txRunner, itemRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, excel.NewMovementExporter())
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	colaboradorUC := usecase.NewColaboradorUseCase(colaboradorRepo)
	herramientaUC := usecase.NewHerramientaUseCase(
		herramientaRepo, colaboradorRepo, infrapdf.NewResponsivaGenerator(cfg.App.Name),
	)
	guiaUC := usecase.NewGuiaUseCase(guiaRepo, log)
	solicitudUC := inventory.NewSolicitudUseCase(txRunner, solicitudRepo, itemRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		MovementUC:    movementUC,
		ClienteUC:     clienteUC,
		ProveedorUC:   proveedorUC,
		ColaboradorUC: colaboradorUC,
		HerramientaUC: herramientaUC,
		GuiaUC:        guiaUC,
		SolicitudUC:   solicitudUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	stopSweep := startGuiaSweep(guiaUC, cfg.Guias.SweepHour, log)
	defer stopSweep()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// runMigrations aplica las migraciones pendientes con goose sobre database/sql
// (driver pgx/stdlib). El pool pgx se abre después, ya contra el esquema al día.
func runMigrations(dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.Up(db, "migrations")
}

// startGuiaSweep corre el barrido de guías atrasadas una vez al arrancar y
// después todos los días a la hora configurada. Devuelve la función de paro.
func startGuiaSweep(uc *usecase.GuiaUseCase, hour int, log zerolog.Logger) func() {
	done := make(chan struct{})
	go func() {
		sweep := func() {
			n, err := uc.SweepAtrasadas(time.Now())
			if err != nil {
				log.Error().Err(err).Msg("barrido de guías atrasadas")
				return
			}
			if n > 0 {
				metrics.GuiasAtrasadas.Add(float64(n))
			}
		}
		sweep()
		for {
			timer := time.NewTimer(untilNextHour(time.Now(), hour))
			select {
			case <-timer.C:
				sweep()
			case <-done:
				timer.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

// untilNextHour devuelve cuánto falta para la próxima ocurrencia de la hora
// local indicada (si ya pasó hoy, la de mañana).
func untilNextHour(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ascendtech/locacao-pro/internal/application/auth"
	"github.com/ascendtech/locacao-pro/internal/application/billing"
	"github.com/ascendtech/locacao-pro/internal/application/cadastro"
	"github.com/ascendtech/locacao-pro/internal/application/contratos"
	"github.com/ascendtech/locacao-pro/internal/application/sequence"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/gcs"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/jsonstore"
	infrapdf "github.com/ascendtech/locacao-pro/internal/infrastructure/pdf"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/viacep"
	httpRouter "github.com/ascendtech/locacao-pro/internal/interfaces/http"
	"github.com/ascendtech/locacao-pro/pkg/config"
	"github.com/ascendtech/locacao-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	// Armazenamento: bucket GCS em produção; memória quando não há bucket
	// configurado (modo de desenvolvimento).
	var store jsonstore.BlobStore
	if cfg.Storage.Bucket != "" {
		gcsStore, err := gcs.NewBlobStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao bucket")
		}
		defer gcsStore.Close()
		store = gcsStore
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("armazenamento no GCS")
	} else {
		store = jsonstore.NewMemoryStore()
		log.Warn().Msg("GCS_BUCKET não configurado; usando armazenamento em memória")
	}

	clientRepo := jsonstore.NewClientRepository(store)
	contractRepo := jsonstore.NewContractRepository(store)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)
	userRepo := jsonstore.NewUserRepository(store)
	alloc := sequence.NewAllocator(jsonstore.NewSequenceRepository(store))

	cepClient := viacep.NewClient(cfg.ViaCEP.BaseURL, time.Duration(cfg.ViaCEP.TimeoutSeconds)*time.Second)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := cadastro.NewClientUseCase(clientRepo, cepClient)
	contractUC := contratos.NewContractUseCase(contractRepo, clientRepo, alloc, infrapdf.NewContractRenderer())
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, contractRepo, alloc, infrapdf.NewInvoiceRenderer())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   clientUC,
		ContractUC: contractUC,
		InvoiceUC:  invoiceUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

// Comando de seed do primeiro usuário do sistema. Não há registro aberto pela
// API: os operadores são criados por aqui.
//
//	GCS_BUCKET=meu-bucket go run ./cmd/seed_admin -nome "Admin" -email admin@example.com -senha segredo
package main

import (
	"context"
	"flag"

	"github.com/ascendtech/locacao-pro/internal/application/auth"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/gcs"
	"github.com/ascendtech/locacao-pro/internal/infrastructure/jsonstore"
	"github.com/ascendtech/locacao-pro/pkg/config"
	"github.com/ascendtech/locacao-pro/pkg/logger"
)

func main() {
	name := flag.String("nome", "", "nome do usuário")
	email := flag.String("email", "", "email de login")
	password := flag.String("senha", "", "senha em texto claro (será armazenada como hash)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" || *password == "" {
		log.Fatal().Msg("uso: seed_admin -nome <nome> -email <email> -senha <senha>")
	}
	if cfg.Storage.Bucket == "" {
		log.Fatal().Msg("GCS_BUCKET obrigatório: sem bucket o usuário seria gravado só em memória")
	}

	ctx := context.Background()
	store, err := gcs.NewBlobStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao bucket")
	}
	defer store.Close()

	authUC := auth.NewAuthUseCase(jsonstore.NewUserRepository(store), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, err := authUC.CreateUser(ctx, *name, *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("criar usuário")
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("usuário criado")
}

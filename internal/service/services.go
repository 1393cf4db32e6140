package service

import (
	"github.com/ghostnote/ghostnote/internal/config"
	"github.com/ghostnote/ghostnote/internal/crypto"
	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/store"
)

type Services struct {
	AuthService   AuthService
	SecretService SecretService
}

func NewServices(storages *store.Storages, engine crypto.Engine, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		SecretService: NewSecretService(storages.SecretRepository, engine, logger),
	}
}

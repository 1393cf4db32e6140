package store

import "github.com/ghostnote/ghostnote/internal/logger"

// Storages aggregates every repository of the application behind a single
// value, so the service layer depends on one constructor instead of each
// repository individually.
type Storages struct {
	UserRepository   UserRepository
	SecretRepository SecretRepository
}

// NewStorages constructs all repositories on top of the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		SecretRepository: NewSecretRepository(db, log),
	}
}

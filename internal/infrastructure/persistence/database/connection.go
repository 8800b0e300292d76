package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cadastrodev/usuarios-backend/internal/domain/ports"
	"github.com/cadastrodev/usuarios-backend/internal/infrastructure/config"
)

// NewDatabaseConnection abre a conexão via GORM. O driver vem da
// configuração: postgres para produção, sqlite para desenvolvimento e
// testes locais. TranslateError fica ligado para que violação de índice
// único chegue ao repositório como gorm.ErrDuplicatedKey.
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"driver", cfg.Driver,
		"database", cfg.DBName,
	)

	return db, nil
}

// Migrate cria a tabela Usuarios quando necessário. Paridade com o
// comportamento de desenvolvimento do sistema original; em produção o
// schema é gerenciado fora do processo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UsuarioModel{})
}

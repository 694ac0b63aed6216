package factory

import (
	"context"
	"evently-catalog-backend/config"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/revalidate"
	"evently-catalog-backend/secrets"
	"sync"

	firebase "firebase.google.com/go"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

var db sync.Once
var fa sync.Once
var rv sync.Once

// Factory hands out the long-lived process-wide handles. Implementations are
// safe for concurrent use; tests substitute their own.
type Factory interface {
	DB(ctx context.Context) *sqlx.DB
	FirebaseApp(ctx context.Context) *firebase.App
	Revalidator(ctx context.Context) revalidate.Signaler
}

type factory struct {
	db     *sqlx.DB
	app    *firebase.App
	signal revalidate.Signaler
}

func NewFactory() Factory {
	return &factory{}
}

func (f *factory) DB(ctx context.Context) *sqlx.DB {
	db.Do(func() {
		dsn := viper.GetString(config.DBURL)

		if viper.GetBool(config.VaultEnabled) {
			vault, err := secrets.New(
				viper.GetString(config.VaultToken),
				viper.GetString(config.VaultAddress),
				viper.GetString(config.VaultDBPath))
			if err != nil {
				logger.Fatalf(ctx, "db: error creating vault client: %+v", err)
			}

			dsn, err = vault.DatabaseDSN()
			if err != nil {
				logger.Fatalf(ctx, "db: error reading dsn from vault: %+v", err)
			}
		}

		sqlDB, err := sqlx.Open("mysql", dsn)
		if err != nil {
			logger.Fatalf(ctx, "db: error creating connection pool: %+v", err)
		}

		f.db = sqlDB
	})

	return f.db
}

func (f *factory) FirebaseApp(ctx context.Context) *firebase.App {
	fa.Do(func() {
		opt := option.WithCredentialsFile(viper.GetString(config.FirebaseServiceAccountKeyPath))
		app, err := firebase.NewApp(ctx, nil, opt)
		if err != nil {
			logger.Fatalf(ctx, "firebaseApp: error initializing firebase app: %+v", err)
		}

		f.app = app
	})

	return f.app
}

func (f *factory) Revalidator(ctx context.Context) revalidate.Signaler {
	rv.Do(func() {
		address := viper.GetString(config.RedisAddress)
		if address == "" {
			logger.Infof(ctx, "revalidator: no redis address configured, invalidation signals disabled")
			f.signal = revalidate.Noop{}
			return
		}

		f.signal = revalidate.NewRedis(
			address,
			viper.GetString(config.RedisPassword),
			viper.GetInt(config.RedisDB),
			viper.GetString(config.RevalidateChannel))
	})

	return f.signal
}

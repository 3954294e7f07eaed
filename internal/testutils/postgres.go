// Package testutils provisions a throwaway postgres for integration tests,
// either from TEST_DB_DSN or a testcontainers instance.
package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var enumDDL = []string{
	`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'user'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN CREATE TYPE reservation_status AS ENUM ('pending', 'confirmed', 'rejected', 'cancelled', 'pending_rejection'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
}

func migrate(gdb *gorm.DB) error {
	for _, ddl := range enumDDL {
		if err := gdb.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return gdb.AutoMigrate(
		&models.User{},
		&models.GPUServer{},
		&models.Reservation{},
		&models.ReservationConflict{},
	)
}

// SetupPostgres returns a migrated gorm handle and a cleanup func. An
// external database can be supplied via TEST_DB_DSN; otherwise a postgres
// container is started.
func SetupPostgres() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		if err := migrate(gdb); err != nil {
			log.Fatal(err)
		}
		return gdb, func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "gpu_reserve",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=gpu_reserve sslmode=disable", host, port.Port())

	var gdb *gorm.DB
	for i := 0; i < 10; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := migrate(gdb); err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup
}

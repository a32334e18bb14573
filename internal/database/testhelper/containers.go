// Package testhelper starts throwaway database containers for integration
// tests and wires the package-level handles in internal/database to them.
// Each container is started once per test run and lives until the process
// exits; connections go through the same Connect* functions production uses,
// so table creation and pool settings are exercised too.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mindgarden/mindgarden-backend/internal/database"
)

var (
	mongoOnce sync.Once
	mongoErr  error

	redisOnce sync.Once
	redisErr  error

	postgresOnce sync.Once
	postgresErr  error
)

// ConnectMongo points database.DB at a shared MongoDB container.
func ConnectMongo(t *testing.T) {
	t.Helper()

	mongoOnce.Do(func() {
		endpoint, err := startMongo()
		if err != nil {
			mongoErr = err
			return
		}
		mongoErr = database.Connect("mongodb://" + endpoint + "/mindgarden_test")
	})
	if mongoErr != nil {
		t.Fatalf("testhelper: mongo setup failed: %v", mongoErr)
	}
}

// ConnectRedis points database.RedisClient at a shared Redis container.
func ConnectRedis(t *testing.T) {
	t.Helper()

	redisOnce.Do(func() {
		endpoint, err := startRedis()
		if err != nil {
			redisErr = err
			return
		}
		redisErr = database.ConnectRedis("redis://" + endpoint + "/0")
	})
	if redisErr != nil {
		t.Fatalf("testhelper: redis setup failed: %v", redisErr)
	}
}

// ConnectPostgres points database.PostgresDB at a shared PostgreSQL container
// and runs the table bootstrap.
func ConnectPostgres(t *testing.T) {
	t.Helper()

	postgresOnce.Do(func() {
		endpoint, err := startPostgres()
		if err != nil {
			postgresErr = err
			return
		}
		dsn := fmt.Sprintf("postgres://testuser:testpass@%s/testdb?sslmode=disable", endpoint)
		postgresErr = database.ConnectPostgres(dsn)
	})
	if postgresErr != nil {
		t.Fatalf("testhelper: postgres setup failed: %v", postgresErr)
	}
}

func startMongo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start mongo: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start redis: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

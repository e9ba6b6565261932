//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

func setupRedis(t testing.TB) *redis.Client {
	t.Helper()

	ctx := context.Background()

	redisCont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := redisCont.Terminate(ctx); err != nil {
			t.Fatalf("Failed to terminate redis container: %v", err)
		}
	})

	host, err := redisCont.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := redisCont.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestLinkRepository_Integration(t *testing.T) {
	repo := NewLinkRepository(setupRedis(t))
	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

	links, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, links)

	require.NoError(t, repo.Append(ctx, "alice", entity.Link{Slug: "a", CreatedAt: createdAt}))
	require.NoError(t, repo.Append(ctx, "alice", entity.Link{Slug: "b", CreatedAt: createdAt}))

	links, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "a", links[0].Slug)
	assert.Equal(t, "b", links[1].Slug)

	require.NoError(t, repo.Replace(ctx, "alice", []entity.Link{{Slug: "c", Clicks: 7, CreatedAt: createdAt}}))

	links, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []entity.Link{{Slug: "c", Clicks: 7, CreatedAt: createdAt}}, links)

	require.NoError(t, repo.Replace(ctx, "alice", nil))

	links, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, links)
}

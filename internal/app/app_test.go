package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/domain"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.Config{}
	cfg.HTTP.Port = "0"
	cfg.Swagger.SpecPath = "does-not-exist.yml"
	cfg.Normalize()
	return cfg
}

func TestRunStopsOnContextCancel(t *testing.T) {
	a := New(testConfig(t))

	_, err := a.service.Start(context.Background(), "Alice, Bob", "wash the dishes")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	require.Equal(t, domain.PhaseIdle, a.service.State(context.Background()).Phase)
}

func TestRunReturnsListenError(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTP.Port = "not-a-port"
	a := New(cfg)

	err := a.Run(context.Background())
	require.Error(t, err)
}

func TestNewRandomizerHonoursSeed(t *testing.T) {
	a := newRandomizer(config.SpinConfig{Seed: 42})
	b := newRandomizer(config.SpinConfig{Seed: 42})
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Intn(50), b.Intn(50))
	}
	require.NotNil(t, newRandomizer(config.SpinConfig{}))
}

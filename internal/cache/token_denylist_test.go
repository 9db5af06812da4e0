package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDenylistRevoke(t *testing.T) {
	_, client := testRedis(t)
	d := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "other tokens stay valid")
}

func TestTokenDenylistExpiredTokenIsNoop(t *testing.T) {
	mr, client := testRedis(t)
	d := NewTokenDenylist(client)
	ctx := context.Background()

	// A token past its exp needs no denylist entry.
	require.NoError(t, d.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))
	assert.Zero(t, len(mr.Keys()))
}

func TestTokenDenylistEntryExpiresWithToken(t *testing.T) {
	mr, client := testRedis(t)
	d := NewTokenDenylist(client)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

package repositories

import (
	"testing"
	"time"

	"github.com/anonto42/portfolio/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevocation(t *testing.T) {
	repo := NewSQLTokenRepository(testutil.NewTestDB(t))
	now := time.Now()

	revoked, err := repo.IsRevoked("jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeToken("jti-1", 1, now.Add(time.Hour)))
	require.NoError(t, repo.RevokeToken("jti-1", 1, now.Add(time.Hour)))
	require.NoError(t, repo.RevokeToken("jti-old", 1, now.Add(-time.Hour)))

	revoked, err = repo.IsRevoked("jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	purged, err := repo.PurgeExpired(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	revoked, err = repo.IsRevoked("jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := GeneratePair(7, "sara@example.com", []string{"user", "admin"})
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "sara@example.com", claims.Email)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)

	refreshClaims, err := ParseRefresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), refreshClaims.UserID)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	pair, err := GeneratePair(7, "sara@example.com", nil)
	assert.NoError(t, err)

	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)

	_, err = ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken("WK001", "Kitchen", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	require.Equal(t, "WK001", claims.EmployeeID)
	require.Equal(t, "Kitchen", claims.Role)
}

// error จาก parse ต้องไม่ถูกกลืน จะได้รู้ว่า expired หรือ token เสีย
func TestParseTokenKeepsFailureCause(t *testing.T) {
	expired, err := GenerateToken("WK001", "Kitchen", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, testSecret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	tok, err := GenerateToken("WK001", "Kitchen", testSecret, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(tok, "wrong-secret")
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseToken("not-a-token", testSecret)
	require.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"os"
	"testing"
	"time"

	"esporteagenda/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(model.User{ID: 5, Name: "Alice", Role: model.RoleOwner}, time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, "Alice", claims.Name)
	require.Equal(t, model.RoleOwner, claims.Role)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	// expired token
	timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := IssueAccessToken(model.User{ID: 1}, time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)

	timeNow = time.Now
	tok, err = IssueAccessToken(model.User{ID: 2, Role: model.RoleClient}, time.Minute)
	require.NoError(t, err)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 2, claims.UserID)
	require.Equal(t, model.RoleClient, claims.Role)

	// parser returns a token flagged invalid
	parseWithClaims = func(_ string, claims jwt.Claims, _ jwt.Keyfunc, _ ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: claims, Valid: false}, nil
	}
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
}

func TestNewResetToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tok, err := NewResetToken()
	require.NoError(t, err)
	require.Len(t, tok, 40)

	other, err := NewResetToken()
	require.NoError(t, err)
	require.NotEqual(t, tok, other)

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err = NewResetToken()
	require.Error(t, err)
}

package boardsrv

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/session"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func TestSignInStoresSessionAndDecodesClaims(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub":   "acc-1",
		"name":  "Ana Tran",
		"roles": []any{"ADMIN"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]string{"accessToken": token})
	})

	store := session.NewMemoryStore()
	svc := NewAuthService(newUpstream(t, mux), store, 24*time.Hour)

	result, err := svc.SignIn(context.Background(), "atran", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "acc-1", result.Principal.Subject)
	assert.True(t, result.Principal.Roles.Has(kernel.RoleAdmin))

	// la sesión resuelve al mismo principal
	sess, principal, err := svc.Resolve(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, token, sess.AccessToken)
	assert.Equal(t, "acc-1", principal.Subject)
}

func TestSignOutInvalidatesSession(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"sub": "acc-2"})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]string{"accessToken": token})
	})

	store := session.NewMemoryStore()
	svc := NewAuthService(newUpstream(t, mux), store, time.Hour)

	result, err := svc.SignIn(context.Background(), "u", "p")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(context.Background(), result.SessionID))

	_, _, err = svc.Resolve(context.Background(), result.SessionID)
	require.Error(t, err)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	})

	svc := NewAuthService(newUpstream(t, mux), session.NewMemoryStore(), time.Hour)
	_, err := svc.SignIn(context.Background(), "u", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

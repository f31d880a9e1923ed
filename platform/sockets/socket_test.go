package socket

import (
	"testing"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestUserFromToken(t *testing.T) {
	secret := []byte("s3cret")

	t.Run("Valid token", func(t *testing.T) {
		raw := sign(t, secret, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix()})

		id, err := userFromToken(raw, secret)

		require.NoError(t, err)
		assert.Equal(t, "u1", id)
	})

	t.Run("Other secret", func(t *testing.T) {
		raw := sign(t, []byte("other"), jwt.MapClaims{"user_id": "u1"})

		_, err := userFromToken(raw, secret)

		assert.ErrorIs(t, err, errUnauthenticated)
	})

	t.Run("Expired", func(t *testing.T) {
		raw := sign(t, secret, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()})

		_, err := userFromToken(raw, secret)

		assert.ErrorIs(t, err, errUnauthenticated)
	})

	t.Run("No user", func(t *testing.T) {
		_, err := userFromToken(sign(t, secret, jwt.MapClaims{}), secret)
		assert.ErrorIs(t, err, errUnauthenticated)

		_, err = userFromToken("", secret)
		assert.ErrorIs(t, err, errUnauthenticated)
	})
}

func TestParse(t *testing.T) {
	secret := []byte("s3cret")
	s := &Server{secret: secret}
	raw := sign(t, secret, jwt.MapClaims{"user_id": "u7"})

	req, userID, err := s.parse(`{"token":"` + raw + `","game_id":"ABCD1234","player_id":"p1"}`)
	require.NoError(t, err)
	assert.Equal(t, "u7", userID)
	assert.Equal(t, "ABCD1234", req.Game_id)
	assert.Equal(t, "p1", req.Player_id)

	_, _, err = s.parse(`{"token":"` + raw + `"}`)
	assert.Error(t, err)

	_, _, err = s.parse(`not json`)
	assert.Error(t, err)
}

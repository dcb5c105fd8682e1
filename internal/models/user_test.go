// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordRoundTrip(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("s3cret-password"))
	assert.NotEqual(t, "s3cret-password", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("s3cret-password"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

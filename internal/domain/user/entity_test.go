package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ana", " Ana@Doceria.com ", "segredo1", "")
	require.NoError(t, err)
	assert.Equal(t, "ana@doceria.com", u.Email)
	assert.Equal(t, RoleSales, u.Role)
	assert.False(t, u.Approved)
	assert.NotEqual(t, "segredo1", u.Password)
	assert.True(t, u.CheckPassword("segredo1"))
	assert.False(t, u.CheckPassword("outra"))
	assert.ErrorIs(t, u.CanLogin(), ErrPendingApproval)

	u.Approved = true
	assert.NoError(t, u.CanLogin())
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "a@b.c", "segredo1", RoleSales)
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = NewUser("Ana", "ana", "segredo1", RoleSales)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = NewUser("Ana", "a@b.c", "123", RoleSales)
	assert.ErrorIs(t, err, ErrWeakPassword)
	_, err = NewUser("Ana", "a@b.c", "segredo1", "gerente")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

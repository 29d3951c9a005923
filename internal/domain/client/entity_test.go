package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("", "1199", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewClient("Maria", " ", "")
	assert.ErrorIs(t, err, ErrEmptyContact)

	c, err := NewClient(" Maria ", "", "11999990000")
	require.NoError(t, err)
	assert.Equal(t, "Maria", c.Name)
	assert.NotEmpty(t, c.ID)
}

func TestFirstAddressBecomesPrimary(t *testing.T) {
	c, err := NewClient("Maria", "1133330000", "")
	require.NoError(t, err)

	_, ok := c.PrimaryAddress()
	assert.False(t, ok)

	a1, err := NewAddress(c.ID, "Rua A", "10", "", "Centro", "Campinas", "sp", "13010-000")
	require.NoError(t, err)
	a2, err := NewAddress(c.ID, "Rua B", "20", "ap 2", "Cambuí", "Campinas", "SP", "")
	require.NoError(t, err)

	first := c.AddAddress(*a1)
	second := c.AddAddress(*a2)
	assert.True(t, first.IsPrimary)
	assert.False(t, second.IsPrimary)
	assert.Equal(t, "SP", first.State)
	assert.Equal(t, "13010000", first.ZipCode)

	primary, ok := c.PrimaryAddress()
	require.True(t, ok)
	assert.Equal(t, "Rua A", primary.Street)
}

func TestNewAddressValidation(t *testing.T) {
	_, err := NewAddress("c", "", "1", "", "", "Campinas", "SP", "")
	assert.ErrorIs(t, err, ErrEmptyStreet)
	_, err = NewAddress("c", "Rua", "1", "", "", "", "SP", "")
	assert.ErrorIs(t, err, ErrEmptyCity)
	_, err = NewAddress("c", "Rua", "1", "", "", "Campinas", "São Paulo", "")
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = NewAddress("c", "Rua", "1", "", "", "Campinas", "SP", "1301")
	assert.ErrorIs(t, err, ErrInvalidZipCode)
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "01001000", OnlyDigits("01001-000"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryUser_Resolved(t *testing.T) {
	assert.True(t, DirectoryUser{ID: "/users/u1"}.Resolved())
	assert.True(t, DirectoryUser{Name: "u1"}.Resolved())
	assert.False(t, DirectoryUser{Email: "alice@example.com"}.Resolved())
}

func TestDirectoryUser_Clone(t *testing.T) {
	original := DirectoryUser{
		ID:         "/users/u1",
		Name:       "u1",
		Attributes: map[string]string{"dept": "eng"},
	}

	clone := original.Clone()
	clone.Attributes["dept"] = "sales"

	assert.Equal(t, "eng", original.Attributes["dept"])
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not an email"))
}

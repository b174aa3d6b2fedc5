package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("compile")
	b := domain.NewInternedString("compile")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "compile", a.String())
	assert.Empty(t, domain.InternedString{}.String())
}

func TestInternedString_JSON(t *testing.T) {
	type target struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(target{Name: domain.NewInternedString("jar")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"jar"}`, string(data))

	var got target
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "jar", got.Name.String())
}

func TestNewInternedStrings(t *testing.T) {
	got := domain.NewInternedStrings([]string{"init", "compile", "init"})
	require.Len(t, got, 3)
	assert.Equal(t, "compile", got[1].String())
	assert.Equal(t, got[0].Value(), got[2].Value())
	assert.Empty(t, domain.NewInternedStrings(nil))
}

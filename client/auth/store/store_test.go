package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.Get(AccessKey)
	assert.False(t, ok)
	assert.Nil(t, Credentials(s))

	require.NoError(t, SetCredentials(s, &oauth2.Token{AccessToken: "A1", RefreshToken: "R1"}))
	token := Credentials(s)
	require.NotNil(t, token)
	assert.Equal(t, "A1", token.AccessToken)
	assert.Equal(t, "R1", token.RefreshToken)

	require.NoError(t, s.Set(AccessKey, "A2"))
	access, _ := s.Get(AccessKey)
	assert.Equal(t, "A2", access)

	require.NoError(t, s.Clear())
	assert.Nil(t, Credentials(s))
}

func TestSetCredentials_KeepsRefreshWhenOmitted(t *testing.T) {
	s := NewMemoryStore(WithCredentials(&oauth2.Token{AccessToken: "A1", RefreshToken: "R1"}))
	require.NoError(t, SetCredentials(s, &oauth2.Token{AccessToken: "A2"}))
	refresh, ok := s.Get(RefreshKey)
	assert.True(t, ok)
	assert.Equal(t, "R1", refresh)
}

func TestFileStore(t *testing.T) {
	location := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFileStore(location)
	require.NoError(t, err)
	assert.Nil(t, Credentials(s))

	require.NoError(t, SetCredentials(s, &oauth2.Token{AccessToken: "A1", RefreshToken: "R1"}))
	_, err = os.Stat(location)
	require.NoError(t, err)

	reopened, err := NewFileStore(location)
	require.NoError(t, err)
	token := Credentials(reopened)
	require.NotNil(t, token)
	assert.Equal(t, "A1", token.AccessToken)
	assert.Equal(t, "R1", token.RefreshToken)

	require.NoError(t, reopened.Clear())
	_, err = os.Stat(location)
	assert.True(t, os.IsNotExist(err))
	assert.Nil(t, Credentials(reopened))

	// clearing an absent session is not an error
	require.NoError(t, reopened.Clear())
}

func TestFileStore_InvalidDocument(t *testing.T) {
	location := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o600))
	_, err := NewFileStore(location)
	assert.Error(t, err)
}

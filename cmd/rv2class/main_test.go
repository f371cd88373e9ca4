package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/romashorodok/rv2class/internal/grant"
	"github.com/romashorodok/rv2class/pkg/variables"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestAppOptions(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions()...))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env-file="))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagTTL = 0
		flagSecret = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenAndVerify(t *testing.T) {
	req := require.New(t)
	t.Setenv("LIVEKIT_API_KEY", "APIdevkey")
	t.Setenv("LIVEKIT_API_SECRET", "a-long-enough-secret-for-hs256-signing")
	t.Setenv("LIVEKIT_URL", "wss://livekit.example.com")

	out, err := execute(t, "token", "math-lesson-1", "teacher-1", "Ms Smith", "--ttl", "2h")
	req.NoError(err)
	token := strings.TrimSpace(out)
	req.NotEmpty(token)

	out, err = execute(t, "verify", token)
	req.NoError(err)

	var claims grant.GrantClaims
	req.NoError(json.Unmarshal([]byte(out), &claims))
	req.Equal("APIdevkey", claims.APIKey)
	req.Equal("teacher-1", claims.Identity)
	req.Equal("Ms Smith", claims.Name)
	req.Equal("math-lesson-1", claims.Video.Room)
	req.True(claims.Video.RoomJoin)
}

func TestVerifyWrongSecret(t *testing.T) {
	req := require.New(t)
	t.Setenv("LIVEKIT_API_KEY", "APIdevkey")
	t.Setenv("LIVEKIT_API_SECRET", "a-long-enough-secret-for-hs256-signing")
	t.Setenv("LIVEKIT_URL", "wss://livekit.example.com")

	out, err := execute(t, "token", "math-lesson-1", "Alice")
	req.NoError(err)

	_, err = execute(t, "verify", strings.TrimSpace(out), "--secret", "some-other-secret-value")
	req.ErrorIs(err, grant.ErrInvalidToken)
}

func TestTokenRequiresArgs(t *testing.T) {
	_, err := execute(t, "token", "math-lesson-1")
	require.Error(t, err)
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestEmptyEnvFileSkipsDotenv(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"LIVEKIT_API_KEY=APIdevkey\n"+
			"LIVEKIT_API_SECRET=a-long-enough-secret-for-hs256-signing\n"+
			"LIVEKIT_URL=wss://livekit.example.com\n"), 0o600))
	t.Chdir(dir)
	for _, key := range []string{"LIVEKIT_API_KEY", "LIVEKIT_API_SECRET", "LIVEKIT_URL"} {
		unsetenv(t, key)
	}

	_, err := execute(t, "token", "math-lesson-1", "Alice")
	req.ErrorIs(err, variables.ErrLiveKitNotConfigured)
	_, ok := os.LookupEnv("LIVEKIT_API_KEY")
	req.False(ok)
}

func TestVerifyWithoutSecret(t *testing.T) {
	unsetenv(t, "LIVEKIT_API_SECRET")
	_, err := execute(t, "verify", "header.payload.signature")
	require.ErrorIs(t, err, variables.ErrLiveKitNotConfigured)
}

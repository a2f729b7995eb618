package pkg

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "alice", Nickname("alice"))
	assert.Equal(t, "bobby", Nickname("b o b\tb y"))
	assert.Equal(t, "abcdefghijklmnop", Nickname("abcdefghijklmnopqrstuvwxyz"))

	random := Nickname("")
	assert.NotEmpty(t, random)
	assert.Contains(t, random, "-")
}

func TestInitLog(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "tetriterm.log")
	prefix, flags, out := log.Prefix(), log.Flags(), log.Writer()
	defer func() {
		log.SetPrefix(prefix)
		log.SetFlags(flags)
		log.SetOutput(out)
	}()

	InitLog(dest, "TEST: ")
	log.Println("hello")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "TEST: "))
	assert.Contains(t, string(data), "hello")
}

package pkg

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	ssh.Session
	out  bytes.Buffer
	code int
}

func (s *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{}, nil, false
}

func (s *fakeSession) Write(p []byte) (int, error) { return s.out.Write(p) }

func (s *fakeSession) Exit(code int) error {
	s.code = code
	return nil
}

func TestServerRefusesWithoutPty(t *testing.T) {
	s, err := NewServer(SshPort, "tetriterm", "")
	require.NoError(t, err)

	sess := &fakeSession{}
	s.sshHandle(sess)

	assert.Equal(t, 1, sess.code)
	assert.Contains(t, sess.out.String(), "non-interactive terminals are not supported")
	assert.Equal(t, 0, s.Players.Len())
}

func TestServerMissingHostKey(t *testing.T) {
	_, err := NewServer(SshPort, "tetriterm", "/nonexistent/host_key")
	assert.Error(t, err)
}

func TestServerCommand(t *testing.T) {
	s, err := NewServer(SshPort, "/usr/local/bin/tetriterm", "")
	require.NoError(t, err)

	p := NewPlayer("alice", &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}, "xterm-256color")
	cmd := s.command(context.Background(), p, []string{"LANG=C"})

	assert.Equal(t, []string{"/usr/local/bin/tetriterm", "--nick", "alice"}, cmd.Args)
	assert.Equal(t, []string{"LANG=C", "TERM=xterm-256color"}, cmd.Env)
}

func TestPlayers(t *testing.T) {
	ps := NewPlayers()
	addr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}

	alice := NewPlayer("alice", addr, "xterm")
	bob := NewPlayer("", addr, "xterm")
	ps.Add(alice)
	ps.Add(bob)

	assert.Equal(t, 2, ps.Len())
	assert.NotEqual(t, alice.Id, bob.Id)
	assert.NotEmpty(t, bob.Name)
	assert.Equal(t, "alice@127.0.0.1:4242", alice.String())

	assert.GreaterOrEqual(t, int64(ps.Remove(alice)), int64(0))
	assert.Equal(t, 1, ps.Len())
}

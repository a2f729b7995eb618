package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hands every SSH session its own game, by running Binary on a
// pseudo-terminal wired to the session.
type Server struct {
	*ssh.Server
	Binary  string
	Players *Players
}

func NewServer(addr, binary, hostKeyFile string) (*Server, error) {
	server := &Server{
		Binary:  binary,
		Players: NewPlayers(),
	}

	s := &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.sshHandle,
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	// Without a host key file a fresh key is generated on every start
	if hostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, fmt.Errorf("host key: %w", err)
		}
	}

	server.Server = s
	return server, nil
}

func (s *Server) command(ctx context.Context, p *Player, environ []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Binary, "--nick", p.Name)
	cmd.Env = append(environ, fmt.Sprintf("TERM=%s", p.Term))
	return cmd
}

func (s *Server) sshHandle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, color.RedString("non-interactive terminals are not supported")+"\n")
		sess.Exit(1)
		return
	}

	p := NewPlayer(sess.User(), sess.RemoteAddr(), ptyReq.Term)
	s.Players.Add(p)
	log.Printf("%s joined, %d playing", p, s.Players.Len())
	defer func() {
		played := s.Players.Remove(p)
		log.Printf("%s left after %s", p, played.Round(time.Second))
	}()

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, p, sess.Environ())
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		log.Printf("Failed to start game for %s: %s", p, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				log.Printf("Failed to resize for %s: %s", p, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	if err := cmd.Wait(); err != nil {
		log.Printf("Game for %s exited: %s", p, err)
	}
}

package pkg

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// Player is someone playing over SSH
type Player struct {
	Id      int
	Name    string
	Addr    net.Addr
	Term    string
	Started time.Time
}

func NewPlayer(name string, addr net.Addr, term string) *Player {
	return &Player{
		Name:    Nickname(name),
		Addr:    addr,
		Term:    term,
		Started: time.Now(),
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s@%s", p.Name, p.Addr)
}

// Players keeps track of who is connected
type Players struct {
	players map[int]*Player
	nextId  int
	sync.Mutex
}

func NewPlayers() *Players {
	return &Players{players: make(map[int]*Player)}
}

func (ps *Players) Add(p *Player) {
	ps.Lock()
	defer ps.Unlock()

	ps.nextId++
	p.Id = ps.nextId
	ps.players[p.Id] = p
}

// Remove drops p and returns how long it was connected
func (ps *Players) Remove(p *Player) time.Duration {
	ps.Lock()
	defer ps.Unlock()

	delete(ps.players, p.Id)
	return time.Since(p.Started)
}

func (ps *Players) Len() int {
	ps.Lock()
	defer ps.Unlock()

	return len(ps.players)
}

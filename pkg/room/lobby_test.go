package room

import (
	"strings"
	"testing"

	"judgement-server/pkg/game"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLobby() *Lobby {
	return NewLobby(logrus.StandardLogger(), game.DefaultOptions())
}

func TestLobby_createRoom(t *testing.T) {
	l := newTestLobby()
	c := NewClient(nil)
	l.clients[c] = nil

	l.handleMessage(c, &PayloadIn{Action: "createRoom", Name: "alice", Context: "c1"})

	res := findKey(pending(c), "roomCreated")
	require.NotNil(t, res)
	assert.Equal(t, 4, len(res.Value))
	assert.Equal(t, "c1", res.Context)

	room, found := l.rooms[res.Value]
	require.True(t, found)
	assert.Equal(t, room, l.clients[c])
}

func TestLobby_joinRoom(t *testing.T) {
	l := newTestLobby()
	host := NewClient(nil)
	l.clients[host] = nil

	l.handleMessage(host, &PayloadIn{Action: "createRoom", Name: "alice"})
	code := findKey(pending(host), "roomCreated").Value

	guest := NewClient(nil)
	l.clients[guest] = nil

	// codes are case-insensitive on join
	l.handleMessage(guest, &PayloadIn{Action: "joinRoom", RoomCode: " " + strings.ToLower(code) + " ", Name: "bob"})

	res := findKey(pending(guest), "roomJoined")
	require.NotNil(t, res)
	assert.Equal(t, code, res.Value)
	assert.Equal(t, l.rooms[code], l.clients[guest])
}

func TestLobby_joinRoom_notFound(t *testing.T) {
	l := newTestLobby()
	c := NewClient(nil)
	l.clients[c] = nil

	l.handleMessage(c, &PayloadIn{Action: "joinRoom", RoomCode: "XXXX", Context: "c1"})

	res := findKey(pending(c), "error")
	require.NotNil(t, res)
	assert.Equal(t, ErrRoomNotFound.Error(), res.Value)
}

func TestLobby_actionBeforeJoining(t *testing.T) {
	l := newTestLobby()
	c := NewClient(nil)
	l.clients[c] = nil

	l.handleMessage(c, &PayloadIn{Action: "startGame"})

	res := findKey(pending(c), "error")
	require.NotNil(t, res)
	assert.Equal(t, ErrNotInRoom.Error(), res.Value)
}

func TestLobby_createRoom_leavesPreviousRoom(t *testing.T) {
	l := newTestLobby()
	c := NewClient(nil)
	l.clients[c] = nil

	l.handleMessage(c, &PayloadIn{Action: "createRoom", Name: "alice"})
	first := findKey(pending(c), "roomCreated").Value

	l.handleMessage(c, &PayloadIn{Action: "createRoom", Name: "alice"})
	second := findKey(pending(c), "roomCreated").Value

	// the first room lost its only occupant and was closed
	_, found := l.rooms[first]
	assert.False(t, found)
	assert.Equal(t, 1, len(l.rooms))
	assert.Equal(t, l.rooms[second], l.clients[c])
}

func TestLobby_joinRoom_leavesPreviousRoom(t *testing.T) {
	l := newTestLobby()
	host := NewClient(nil)
	guest := NewClient(nil)
	l.clients[host] = nil
	l.clients[guest] = nil

	l.handleMessage(host, &PayloadIn{Action: "createRoom", Name: "alice"})
	hostCode := findKey(pending(host), "roomCreated").Value
	l.handleMessage(guest, &PayloadIn{Action: "joinRoom", RoomCode: hostCode, Name: "bob"})
	pending(guest)

	hostRoom := l.rooms[hostCode]

	// the guest wanders off to their own room; the host's room survives
	// but no longer tracks them
	l.handleMessage(guest, &PayloadIn{Action: "createRoom", Name: "bob"})
	guestCode := findKey(pending(guest), "roomCreated").Value

	assert.Equal(t, 1, len(hostRoom.Clients()))
	assert.Equal(t, l.rooms[guestCode], l.clients[guest])
	_, found := l.rooms[hostCode]
	assert.True(t, found)
}

func TestLobby_joinRoom_currentRoomIsNoOp(t *testing.T) {
	l := newTestLobby()
	c := NewClient(nil)
	l.clients[c] = nil

	l.handleMessage(c, &PayloadIn{Action: "createRoom", Name: "alice"})
	code := findKey(pending(c), "roomCreated").Value

	l.handleMessage(c, &PayloadIn{Action: "joinRoom", RoomCode: code, Name: "alice"})

	res := findKey(pending(c), "roomJoined")
	require.NotNil(t, res)
	assert.Equal(t, code, res.Value)

	room, found := l.rooms[code]
	require.True(t, found)
	assert.Equal(t, 1, len(room.Clients()))
}

func TestLobby_createRoom_retriesOnCodeCollision(t *testing.T) {
	l := newTestLobby()

	codes := []string{"AAAA", "AAAA", "BBBB"}
	l.generateCode = func(n int) (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	host := NewClient(nil)
	guest := NewClient(nil)
	l.clients[host] = nil
	l.clients[guest] = nil

	l.handleMessage(host, &PayloadIn{Action: "createRoom", Name: "alice"})
	assert.Equal(t, "AAAA", findKey(pending(host), "roomCreated").Value)

	// the second create draws AAAA again and must retry
	l.handleMessage(guest, &PayloadIn{Action: "createRoom", Name: "bob"})
	assert.Equal(t, "BBBB", findKey(pending(guest), "roomCreated").Value)

	assert.Equal(t, 2, len(l.rooms))
	assert.NotNil(t, l.rooms["AAAA"])
	assert.NotNil(t, l.rooms["BBBB"])
}

func TestLobby_removeClient_closesEmptyRoom(t *testing.T) {
	l := newTestLobby()
	host := NewClient(nil)
	guest := NewClient(nil)
	l.clients[host] = nil
	l.clients[guest] = nil

	l.handleMessage(host, &PayloadIn{Action: "createRoom", Name: "alice"})
	code := findKey(pending(host), "roomCreated").Value
	l.handleMessage(guest, &PayloadIn{Action: "joinRoom", RoomCode: code, Name: "bob"})

	l.removeClient(host)
	_, found := l.rooms[code]
	assert.True(t, found)

	l.removeClient(guest)
	_, found = l.rooms[code]
	assert.False(t, found)
	assert.Equal(t, 0, len(l.clients))
}

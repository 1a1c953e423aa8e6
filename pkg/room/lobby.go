package room

import (
	"errors"
	"strings"

	"judgement-server/pkg/game"
	"judgement-server/pkg/token"

	"github.com/sirupsen/logrus"
)

const roomCodeLength = 4

// ErrRoomNotFound is returned when a join names an unknown room code
var ErrRoomNotFound = errors.New("room not found")

// ErrNotInRoom is returned for game actions sent before joining a room
var ErrNotInRoom = errors.New("you are not in a room")

type clientMessage struct {
	client *Client
	msg    *PayloadIn
}

// Lobby is responsible for dispatching clients to rooms
type Lobby struct {
	opts    game.Options
	logger  logrus.FieldLogger
	rooms   map[string]*Room
	clients map[*Client]*Room

	connect    chan *Client
	disconnect chan *Client
	messages   chan clientMessage

	// generateCode is swapped out in tests
	generateCode func(n int) (string, error)
}

// NewLobby returns a new dispatch object
func NewLobby(logger logrus.FieldLogger, opts game.Options) *Lobby {
	return &Lobby{
		opts:         opts,
		logger:       logger,
		rooms:        make(map[string]*Room),
		clients:      make(map[*Client]*Room),
		connect:      make(chan *Client, 256),
		disconnect:   make(chan *Client, 256),
		messages:     make(chan clientMessage, 256),
		generateCode: token.Generate,
	}
}

// newRoomCode generates a code that no live room is using
// NOTE: must only be called from the run loop
func (l *Lobby) newRoomCode() (string, error) {
	for {
		code, err := l.generateCode(roomCodeLength)
		if err != nil {
			return "", err
		}

		if _, inUse := l.rooms[code]; !inUse {
			return code, nil
		}
	}
}

// StartShift starts the lobby run loop
func (l *Lobby) StartShift() {
	go l.runLoop()
}

func (l *Lobby) runLoop() {
	for {
		select {
		case client := <-l.connect:
			l.logger.WithField("client", client.String()).Debug("client connected")
			l.clients[client] = nil
		case client := <-l.disconnect:
			l.logger.WithField("client", client.String()).Debug("client disconnected")
			l.removeClient(client)
		case cm := <-l.messages:
			l.handleMessage(cm.client, cm.msg)
		}
	}
}

// ClientConnected is called when a client connects to the server
func (l *Lobby) ClientConnected(client *Client) {
	l.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (l *Lobby) ClientDisconnected(client *Client) {
	l.disconnect <- client
}

// ReceivedMessage is called when the server receives a message from a connected client
func (l *Lobby) ReceivedMessage(client *Client, msg *PayloadIn) {
	l.messages <- clientMessage{client: client, msg: msg}
}

// NOTE: must only be called from the run loop
func (l *Lobby) removeClient(client *Client) {
	l.leaveCurrentRoom(client)
	delete(l.clients, client)
}

// leaveCurrentRoom detaches the client from the room it is in, if any,
// closing the room when the client was its last occupant
// NOTE: must only be called from the run loop
func (l *Lobby) leaveCurrentRoom(client *Client) {
	room := l.clients[client]
	if room == nil {
		return
	}

	l.clients[client] = nil
	if room.RemoveClient(client) {
		l.logger.WithField("room", room.Code()).Debug("closing empty room")
		room.EndShift()
		delete(l.rooms, room.Code())
	}
}

// NOTE: must only be called from the run loop
func (l *Lobby) handleMessage(client *Client, msg *PayloadIn) {
	switch msg.Action {
	case "createRoom":
		code, err := l.newRoomCode()
		if err != nil {
			client.Send(newErrorResponse(msg.Context, err))
			return
		}

		l.leaveCurrentRoom(client)

		room := NewRoom(l.logger, code, l.opts)
		room.StartShift()
		l.rooms[code] = room
		l.clients[client] = room
		room.AddClient(client, msg.Name)

		client.Send(&Response{
			Key:     "roomCreated",
			Value:   code,
			Context: msg.Context,
		})
	case "joinRoom":
		room, found := l.rooms[strings.ToUpper(strings.TrimSpace(msg.RoomCode))]
		if !found {
			client.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
			return
		}

		// joining the current room again is a no-op
		if l.clients[client] != room {
			l.leaveCurrentRoom(client)

			l.clients[client] = room
			room.AddClient(client, msg.Name)
		}

		client.Send(&Response{
			Key:     "roomJoined",
			Value:   room.Code(),
			Context: msg.Context,
		})
	default:
		room := l.clients[client]
		if room == nil {
			client.Send(newErrorResponse(msg.Context, ErrNotInRoom))
			return
		}

		room.ReceivedMessage(client, msg)
	}
}

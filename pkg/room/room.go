package room

import (
	"errors"
	"strings"
	"sync"
	"time"

	"judgement-server/internal/rng"
	"judgement-server/internal/util"
	"judgement-server/pkg/bot"
	"judgement-server/pkg/game"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Room runs a single table. All game mutations happen in the run loop,
// which also owns the ticker that drives timed transitions and bot seats.
type Room struct {
	code    string
	game    *game.Game
	clients map[*Client]bool
	lock    sync.RWMutex
	bots    map[string]bool
	logger  logrus.FieldLogger

	execInRunLoop chan func()
	close         chan bool
}

// NewRoom creates a new room
// This is called from a blocking state, so it needs to return quickly
func NewRoom(logger logrus.FieldLogger, code string, opts game.Options) *Room {
	return &Room{
		code:          code,
		game:          game.New(logger, code, rng.NewMath(), opts),
		clients:       make(map[*Client]bool),
		bots:          make(map[string]bool),
		logger:        logger.WithField("room", code),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Code returns the room's join code
func (r *Room) Code() string {
	return r.code
}

// Clients will return a slice of connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

func (r *Room) runLoop() {
	r.logger.Debug("creating room run loop")

	ticker := time.NewTicker(r.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-ticker.C:
			r.tick()
		case <-r.close:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// AddClient seats a client at the table
// This method must return quickly
func (r *Room) AddClient(client *Client, name string) {
	if name = strings.TrimSpace(name); name == "" {
		name = util.GetRandomName()
	}

	r.lock.Lock()
	client.room = r
	client.Name = name
	r.clients[client] = true
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		if _, err := r.game.AddPlayer(client.SessionID, client.Name); err != nil {
			// full or in-progress games still get a spectator view
			client.Send(newErrorResponse("", err))
		}

		r.broadcast()
	}
}

// RemoveClient removes a client
// This method must return quickly
func (r *Room) RemoveClient(client *Client) (lastClient bool) {
	r.lock.Lock()
	delete(r.clients, client)
	nClients := len(r.clients)
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		r.game.RemovePlayer(client.SessionID)
		r.broadcast()
	}

	return nClients == 0
}

// EndShift is called when the room is no longer needed
func (r *Room) EndShift() {
	close(r.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (r *Room) ReceivedMessage(c *Client, msg *PayloadIn) {
	r.execInRunLoop <- func() {
		r.handleMessage(c, msg)
	}
}

// NOTE: must only be called from the run loop
func (r *Room) handleMessage(c *Client, msg *PayloadIn) {
	var err error
	switch msg.Action {
	case "startGame":
		err = r.game.StartGame()
	case "bid":
		err = r.game.PlaceBid(c.SessionID, msg.Bid)
	case "playCard":
		err = r.game.PlayCard(c.SessionID, msg.CardID)
	case "continue":
		r.game.ContinueAfterTrick()
	case "chat":
		r.game.AddChatMessage(c.Name, msg.Message)
	case "addBot":
		err = r.addBot()
	default:
		err = errors.New("unknown action: " + msg.Action)
	}

	if err != nil {
		r.logger.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	r.broadcast()
}

// NOTE: must only be called from the run loop
func (r *Room) addBot() error {
	sessionID := uuid.New().String()
	name := util.GetRandomName() + " (bot)"

	if _, err := r.game.AddPlayer(sessionID, name); err != nil {
		return err
	}

	r.bots[sessionID] = true
	return nil
}

// NOTE: must only be called from the run loop
func (r *Room) tick() {
	changed, err := r.game.Tick()
	if err != nil {
		r.logger.WithError(err).Error("tick failed")
	}

	if r.runBots() {
		changed = true
	}

	if changed {
		r.broadcast()
	}
}

// runBots lets a bot on turn act. One action per tick keeps the pace
// readable for the humans at the table.
// NOTE: must only be called from the run loop
func (r *Room) runBots() bool {
	player := r.game.CurrentPlayer()
	if player == nil || !r.bots[player.SessionID] {
		return false
	}

	state := r.game.StateForSession(player.SessionID)

	var err error
	switch r.game.Phase() {
	case game.PhaseBidding:
		err = r.game.PlaceBid(player.SessionID, bot.Bid(state))
	case game.PhasePlaying:
		err = r.game.PlayCard(player.SessionID, bot.ChooseCard(state))
	default:
		return false
	}

	if err != nil {
		r.logger.WithError(err).WithField("bot", player.Name).Error("bot could not act")
		return false
	}

	return true
}

// NOTE: must only be called from the run loop
func (r *Room) broadcast() {
	for _, client := range r.Clients() {
		client.Send(&Response{
			Key:  "game",
			Data: r.game.StateForSession(client.SessionID),
		})
	}
}

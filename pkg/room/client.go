package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// SessionID identifies the client's seat across the game
	SessionID string

	// Name is the display name supplied when the client joined a room
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:      conn,
		SessionID: uuid.New().String(),
		send:      make(chan interface{}, 256),
		Close:     make(chan string),
	}
}

// Send sends a message to the web client
// Returns false if the send buffer is full and the message was dropped
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if room := c.room; room != nil {
		return fmt.Sprintf("%s:%s", c.SessionID, room.Code())
	}

	return c.SessionID
}

package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"judgement-server/pkg/game"
	"judgement-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return conn
}

// readUntilKey reads messages until one arrives with the wanted key
func readUntilKey(t *testing.T, conn *websocket.Conn, key string) *room.Response {
	t.Helper()

	for i := 0; i < 100; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var res room.Response
		require.NoError(t, conn.ReadJSON(&res))

		if res.Key == key {
			return &res
		}
	}

	t.Fatalf("never received a %q message", key)
	return nil
}

func TestWS_createAndJoinRoom(t *testing.T) {
	ts := httptest.NewServer(NewMux("v0.0.0", game.DefaultOptions()))
	defer ts.Close()

	host := dialWS(t, ts)
	defer host.Close()

	require.NoError(t, host.WriteJSON(&room.PayloadIn{Action: "createRoom", Name: "alice", Context: "c1"}))

	created := readUntilKey(t, host, "roomCreated")
	assert.Equal(t, 4, len(created.Value))
	assert.Equal(t, "c1", created.Context)

	state := readUntilKey(t, host, "game")
	data := state.Data.(map[string]interface{})
	assert.Equal(t, created.Value, data["roomId"])
	assert.Equal(t, float64(1), data["round"])
	assert.Equal(t, "LOBBY", data["phase"])

	guest := dialWS(t, ts)
	defer guest.Close()

	require.NoError(t, guest.WriteJSON(&room.PayloadIn{Action: "joinRoom", RoomCode: created.Value, Name: "bob"}))
	joined := readUntilKey(t, guest, "roomJoined")
	assert.Equal(t, created.Value, joined.Value)

	// a game cannot start with open seats
	require.NoError(t, host.WriteJSON(&room.PayloadIn{Action: "startGame", Context: "c2"}))
	errRes := readUntilKey(t, host, "error")
	assert.Equal(t, game.ErrNotEnoughPlayers.Error(), errRes.Value)
	assert.Equal(t, "c2", errRes.Context)
}

func TestWS_joinUnknownRoom(t *testing.T) {
	ts := httptest.NewServer(NewMux("v0.0.0", game.DefaultOptions()))
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(&room.PayloadIn{Action: "joinRoom", RoomCode: "XXXX"}))
	errRes := readUntilKey(t, conn, "error")
	assert.Equal(t, room.ErrRoomNotFound.Error(), errRes.Value)
}

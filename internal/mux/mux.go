package mux

import (
	"net/http"

	"judgement-server/pkg/game"
	"judgement-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	lobby   *room.Lobby
}

// NewMux returns a new HTTP mux
func NewMux(version string, opts game.Options) *Mux {
	lobby := room.NewLobby(logrus.StandardLogger(), opts)
	lobby.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		lobby:   lobby,
	}

	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Router.Methods(http.MethodGet).Path("/api/ws").Handler(this.getWS())

	this.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})

	return this
}

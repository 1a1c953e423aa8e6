package room

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action   string `json:"action"`
	Name     string `json:"name"`
	RoomCode string `json:"roomCode"`
	Bid      int    `json:"bid"`
	CardID   string `json:"cardId"`
	Message  string `json:"message"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is the envelope for every message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

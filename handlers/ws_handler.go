package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/openhaul/loadboard/events"
	"github.com/openhaul/loadboard/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// BoardFeedHandler streams load board events (posted, booked,
// released, removed) to the client until it disconnects.
func BoardFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	sub := events.Board.Subscribe()

	go func() {
		defer conn.Close()
		for msg := range sub {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reads only detect disconnects; the board is one-way.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			events.Board.Unsubscribe(sub)
			break
		}
	}
}

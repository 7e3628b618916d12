package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"sdgdash.org/internal/chart"
	"sdgdash.org/internal/logging"
	"sdgdash.org/internal/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next message or pong from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// selectionRequest is sent by the page whenever a dropdown changes.
type selectionRequest struct {
	Input string `json:"input"`
	Value string `json:"value"`
}

// selectionReply carries the recomputed figure for the output bound to the
// changed input, or an error.
type selectionReply struct {
	Output    string        `json:"output,omitempty"`
	Selection string        `json:"selection,omitempty"`
	Figure    *chart.Figure `json:"figure,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// selectionSocketHandler answers each selection message with the figure it
// selects. Messages are handled in order, one at a time.
func (api *RestAPI) selectionSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.LogError(api.Logger, "websocket upgrade failed", err,
			slog.String("client_ip", clientIP(r)))
		return
	}
	defer logging.SafeCloseWithLogging(conn, api.Logger, "selection_websocket")

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go api.pingLoop(conn, done)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.LogError(api.Logger, "websocket read failed", err,
					slog.String("client_ip", clientIP(r)))
			}
			return
		}

		reply := api.handleSelection(message)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			logging.LogError(api.Logger, "websocket write failed", err,
				slog.String("client_ip", clientIP(r)))
			return
		}
	}
}

func (api *RestAPI) handleSelection(message []byte) selectionReply {
	var req selectionRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return selectionReply{Error: "malformed selection message"}
	}
	if err := utils.ValidateSelection(req.Value); err != nil {
		return selectionReply{Error: err.Error()}
	}

	entry, err := api.lookupFigure(req.Input, req.Value)
	if err != nil {
		return selectionReply{Error: err.Error()}
	}
	return selectionReply{
		Output:    entry.ID,
		Selection: entry.Selection,
		Figure:    &entry.Figure,
	}
}

// pingLoop keeps the connection alive until done is closed. Control frames
// may be written concurrently with WriteJSON.
func (api *RestAPI) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

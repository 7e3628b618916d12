package restapi

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdgdash.org/internal/models"
)

func dialSelectionSocket(t *testing.T) *websocket.Conn {
	t.Helper()
	server := newTestServer(t, createTestApi(t))
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func exchange(t *testing.T, conn *websocket.Conn, message interface{}) selectionReply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(message))
	var reply selectionReply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestSelectionSocket(t *testing.T) {
	conn := dialSelectionSocket(t)

	t.Run("country selection", func(t *testing.T) {
		reply := exchange(t, conn, selectionRequest{Input: "country", Value: "Germany"})
		assert.Empty(t, reply.Error)
		assert.Equal(t, models.OutputCountryChart, reply.Output)
		assert.Equal(t, "Germany", reply.Selection)
		require.NotNil(t, reply.Figure)
		require.Len(t, reply.Figure.Data, 1)
		assert.Equal(t, "lightgreen", reply.Figure.Data[0].Color)
	})

	t.Run("region selection", func(t *testing.T) {
		reply := exchange(t, conn, selectionRequest{Input: "region", Value: "World"})
		assert.Equal(t, models.OutputRegionChart, reply.Output)
		require.NotNil(t, reply.Figure)
		assert.Equal(t, []float64{2010, 2011, 2012, 2013}, reply.Figure.Data[0].X)
	})

	t.Run("empty value selects the default", func(t *testing.T) {
		reply := exchange(t, conn, selectionRequest{Input: "country"})
		assert.Equal(t, "India", reply.Selection)

		reply = exchange(t, conn, selectionRequest{Input: "region"})
		assert.Equal(t, "World", reply.Selection)
	})

	t.Run("repeated selection is idempotent", func(t *testing.T) {
		first := exchange(t, conn, selectionRequest{Input: "country", Value: "Brazil"})
		second := exchange(t, conn, selectionRequest{Input: "country", Value: "Brazil"})
		assert.Equal(t, first, second)
	})

	t.Run("errors keep the connection open", func(t *testing.T) {
		reply := exchange(t, conn, selectionRequest{Input: "country", Value: "Atlantis"})
		assert.Contains(t, reply.Error, "unknown selection")
		assert.Nil(t, reply.Figure)

		reply = exchange(t, conn, selectionRequest{Input: "weather", Value: "World"})
		assert.Contains(t, reply.Error, "unknown selection")

		reply = exchange(t, conn, selectionRequest{Input: "region", Value: "<b>World</b>"})
		assert.Contains(t, reply.Error, "invalid characters")

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
		var malformed selectionReply
		require.NoError(t, conn.ReadJSON(&malformed))
		assert.Equal(t, "malformed selection message", malformed.Error)

		reply = exchange(t, conn, selectionRequest{Input: "region", Value: "Sub-Saharan Africa"})
		assert.Empty(t, reply.Error)
		assert.Equal(t, []float64{2010, 2011}, reply.Figure.Data[0].X)
	})
}

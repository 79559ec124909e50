package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades the frontend connection and hands it to the session.
func WSHandler(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	session := GetSession()
	session.HandleConnection(conn)
	return nil
}

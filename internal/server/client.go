package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/npezzotti/creatorhub/internal/stats"
	"github.com/teris-io/shortid"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBufferSize = 256
)

type Client struct {
	id         string
	conn       *websocket.Conn
	chatServer *ChatServer
	log        *zap.Logger
	send       chan *ServerMessage
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewClient(conn *websocket.Conn, cs *ChatServer, l *zap.Logger) (*Client, error) {
	id, err := shortid.Generate()
	if err != nil {
		return nil, err
	}

	return &Client{
		id:         id,
		conn:       conn,
		chatServer: cs,
		log:        l.With(zap.String("client_id", id)),
		send:       make(chan *ServerMessage, sendBufferSize),
		stop:       make(chan struct{}),
	}, nil
}

func (c *Client) Id() string {
	return c.id
}

func (c *Client) Write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.log.Debug("write exiting")
	}()

	for {
		select {
		case msg := <-c.send:
			bytes, err := serializeMessage(msg)
			if err != nil {
				c.log.Error("failed to serialize message", zap.Error(err))
				continue
			}

			if !c.sendMessage(websocket.TextMessage, bytes) {
				return
			}
		case <-c.stop:
			c.sendMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case <-ticker.C:
			if !c.sendMessage(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

func (c *Client) Read() {
	defer func() {
		c.conn.Close()
		c.cleanup()
		c.log.Debug("read exiting")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) })
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.log.Warn("ws read", zap.Error(err))
			}
			break
		}

		c.handleFrame(raw)
	}
}

// handleFrame decodes one inbound frame. Frames that cannot be decoded are
// logged and dropped; the connection stays open and nothing is sent back.
func (c *Client) handleFrame(raw []byte) {
	msg, err := parseClientMessage(raw)
	if err != nil {
		c.rejectFrame(err)
		return
	}

	switch msg.Type {
	case TypeSendMessage:
		payload, err := msg.sendMessage()
		if err != nil {
			c.rejectFrame(err)
			return
		}

		c.chatServer.publish(&publishReq{client: c, msg: payload})
	default:
		c.log.Debug("ignoring frame", zap.String("type", msg.Type))
	}
}

func (c *Client) rejectFrame(err error) {
	c.log.Warn("dropping frame", zap.Error(err))
	c.chatServer.stats.Incr(stats.NumMalformedFrames)
}

// queueMessage hands msg to the write pump without blocking. A client whose
// buffer is full misses the message.
func (c *Client) queueMessage(msg *ServerMessage) bool {
	select {
	case c.send <- msg:
	default:
		c.log.Warn("failed to send message to client, channel is full")
		return false
	}

	return true
}

func (c *Client) sendMessage(msgType int, msg []byte) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := c.conn.WriteMessage(msgType, msg); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			c.log.Warn("write message", zap.Error(err))
		}
		return false
	}

	return true
}

func (c *Client) stopClient() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *Client) cleanup() {
	c.chatServer.deregisterClient(c)
	c.stopClient()
}

package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/npezzotti/creatorhub/internal/database"
	"github.com/npezzotti/creatorhub/internal/stats"
	"github.com/npezzotti/creatorhub/internal/types"
	"go.uber.org/zap"
)

var ErrServerStopped = errors.New("chat server stopped")

type publishReq struct {
	client *Client
	msg    *SendMessage
}

type stopReq struct {
	done chan struct{}
}

// ChatServer fans every chat message out to every connected client. Message
// persistence and broadcast happen on the Run goroutine, one publish at a
// time.
type ChatServer struct {
	log            *zap.Logger
	db             database.CreatorHubRepository
	stats          stats.StatsProvider
	senderId       int
	clients        map[*Client]struct{}
	clientsLock    sync.Mutex
	registerChan   chan *Client
	deregisterChan chan *Client
	publishChan    chan *publishReq
	stop           chan stopReq
	done           chan struct{}
}

// NewChatServer creates a chat server that attributes every message to
// senderId.
func NewChatServer(logger *zap.Logger, db database.CreatorHubRepository, su stats.StatsProvider, senderId int) (*ChatServer, error) {
	if senderId <= 0 {
		return nil, fmt.Errorf("invalid sender id %d", senderId)
	}

	su.RegisterMetric(stats.NumActiveClients)
	su.RegisterMetric(stats.NumMessagesBroadcast)
	su.RegisterMetric(stats.NumMalformedFrames)

	return &ChatServer{
		log:            logger.Named("chat"),
		db:             db,
		stats:          su,
		senderId:       senderId,
		clients:        make(map[*Client]struct{}),
		registerChan:   make(chan *Client),
		deregisterChan: make(chan *Client),
		publishChan:    make(chan *publishReq, 256),
		stop:           make(chan stopReq),
		done:           make(chan struct{}),
	}, nil
}

func (cs *ChatServer) Run() {
	for {
		select {
		case client := <-cs.registerChan:
			cs.log.Info("adding connection", zap.String("client_id", client.id))
			cs.addClient(client)
		case client := <-cs.deregisterChan:
			cs.log.Info("removing connection", zap.String("client_id", client.id))
			cs.removeClient(client)
		case req := <-cs.publishChan:
			cs.saveAndBroadcast(req)
		case req := <-cs.stop:
			cs.log.Info("stopping clients")
			for _, c := range cs.snapshotClients() {
				c.stopClient()
				cs.removeClient(c)
			}

			close(cs.done)
			close(req.done)
			return
		}
	}
}

// RegisterClient moves a freshly upgraded connection into the open state.
func (cs *ChatServer) RegisterClient(c *Client) error {
	select {
	case cs.registerChan <- c:
		return nil
	case <-cs.done:
		return ErrServerStopped
	}
}

func (cs *ChatServer) deregisterClient(c *Client) {
	select {
	case cs.deregisterChan <- c:
	case <-cs.done:
	}
}

func (cs *ChatServer) publish(req *publishReq) {
	select {
	case cs.publishChan <- req:
	case <-cs.done:
		req.client.log.Warn("chat server stopped, dropping message")
	}
}

func (cs *ChatServer) addClient(c *Client) {
	cs.clientsLock.Lock()
	defer cs.clientsLock.Unlock()

	if _, ok := cs.clients[c]; ok {
		return
	}
	cs.clients[c] = struct{}{}
	cs.stats.Incr(stats.NumActiveClients)
}

func (cs *ChatServer) removeClient(c *Client) {
	cs.clientsLock.Lock()
	defer cs.clientsLock.Unlock()

	if _, ok := cs.clients[c]; !ok {
		return
	}
	delete(cs.clients, c)
	cs.stats.Decr(stats.NumActiveClients)
}

func (cs *ChatServer) snapshotClients() []*Client {
	cs.clientsLock.Lock()
	defer cs.clientsLock.Unlock()

	clients := make([]*Client, 0, len(cs.clients))
	for c := range cs.clients {
		clients = append(clients, c)
	}
	return clients
}

func (cs *ChatServer) numClients() int {
	cs.clientsLock.Lock()
	defer cs.clientsLock.Unlock()

	return len(cs.clients)
}

func (cs *ChatServer) saveAndBroadcast(req *publishReq) {
	roomId := int(req.msg.RoomId)
	log := req.client.log.With(zap.Int("room_id", roomId))

	if _, err := cs.db.GetChatRoom(roomId); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			log.Warn("dropping message for unknown room")
			cs.stats.Incr(stats.NumMalformedFrames)
		} else {
			log.Error("get chat room", zap.Error(err))
		}
		return
	}

	msg, err := cs.db.CreateChatMessage(database.ChatMessage{
		RoomId:   roomId,
		SenderId: cs.senderId,
		Content:  req.msg.Content,
	})
	if err != nil {
		log.Error("error saving message", zap.Error(err))
		return
	}

	out := types.ChatMessage{ChatMessage: msg}
	sender, err := cs.db.GetUser(cs.senderId)
	switch {
	case err == nil:
		out.Sender = &sender
	case errors.Is(err, database.ErrNotFound):
		log.Warn("sender not found", zap.Int("sender_id", cs.senderId))
	default:
		log.Error("get sender", zap.Error(err))
	}

	n := cs.broadcast(NewMessage(out))
	cs.stats.Incr(stats.NumMessagesBroadcast)
	log.Debug("broadcast message", zap.Int("message_id", msg.Id), zap.Int("recipients", n))
}

// broadcast queues msg on every open client regardless of room and returns
// how many clients accepted it.
func (cs *ChatServer) broadcast(msg *ServerMessage) int {
	n := 0
	for _, c := range cs.snapshotClients() {
		if c.queueMessage(msg) {
			n++
		}
	}
	return n
}

func (cs *ChatServer) Shutdown(ctx context.Context) error {
	cs.log.Info("received shutdown signal")

	req := stopReq{done: make(chan struct{})}
	select {
	case cs.stop <- req:
	case <-cs.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-req.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

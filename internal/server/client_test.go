package server

import (
	"testing"

	"github.com/npezzotti/creatorhub/internal/database"
	"github.com/npezzotti/creatorhub/internal/stats"
	"github.com/npezzotti/creatorhub/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_queueMessage(t *testing.T) {
	t.Run("successful queue", func(t *testing.T) {
		c := &Client{
			send: make(chan *ServerMessage, 1),
			log:  testutil.TestLogger(t),
		}

		res := c.queueMessage(&ServerMessage{})
		assert.True(t, res, "expected queueMessage to return true when channel is not full")

		select {
		case msg := <-c.send:
			assert.NotNil(t, msg, "expected a message to be sent to the client")
		default:
			t.Error("expected a message to be sent to the client, but none was sent")
		}
	})
	t.Run("channel full", func(t *testing.T) {
		c := &Client{
			send: make(chan *ServerMessage, 1),
			log:  testutil.TestLogger(t),
		}

		c.send <- &ServerMessage{} // Pre-fill the send channel to simulate a full channel
		res := c.queueMessage(&ServerMessage{})
		assert.False(t, res, "expected queueMessage to return false when channel is full")
	})
}

func Test_stopClient(t *testing.T) {
	c := &Client{
		stop: make(chan struct{}),
	}

	c.stopClient()
	assert.NotPanics(t, c.stopClient, "expected a second stop to be a no-op")

	select {
	case <-c.stop:
		// Channel is closed as expected
	default:
		t.Error("expected stop channel to be closed")
	}
}

func Test_handleFrame(t *testing.T) {
	tcases := []struct {
		name      string
		raw       string
		published *SendMessage
		malformed bool
	}{
		{
			name:      "valid send message",
			raw:       `{"type":"send_message","payload":{"roomId":"1","content":"hi"}}`,
			published: &SendMessage{RoomId: 1, Content: "hi"},
		},
		{
			name:      "invalid json",
			raw:       `{"type":`,
			malformed: true,
		},
		{
			name:      "invalid payload",
			raw:       `{"type":"send_message","payload":{"roomId":1}}`,
			malformed: true,
		},
		{
			name: "unknown type is ignored",
			raw:  `{"type":"typing","payload":{}}`,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			su := &stats.MockStatsUpdater{}
			defer su.AssertExpectations(t)
			if tc.malformed {
				su.On("Incr", stats.NumMalformedFrames).Once()
			}

			cs := newTestChatServer(t, &database.MockCreatorHubRepository{}, su)
			c := &Client{
				id:         "test",
				chatServer: cs,
				log:        testutil.TestLogger(t),
			}

			c.handleFrame([]byte(tc.raw))

			select {
			case req := <-cs.publishChan:
				assert.NotNil(t, tc.published, "expected no publish request")
				assert.Equal(t, tc.published, req.msg)
				assert.Equal(t, c, req.client)
			default:
				assert.Nil(t, tc.published, "expected a publish request")
			}
		})
	}
}

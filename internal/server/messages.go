package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npezzotti/creatorhub/internal/types"
	"github.com/npezzotti/creatorhub/internal/validation"
)

const (
	TypeSendMessage = "send_message"
	TypeNewMessage  = "new_message"
)

var errMalformedFrame = errors.New("malformed frame")

// ClientMessage is the envelope of every inbound frame. Payload is decoded
// according to Type.
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type SendMessage struct {
	RoomId  RoomId `json:"roomId" validate:"gt=0"`
	Content string `json:"content" validate:"required,max=2000"`
}

// RoomId accepts both a JSON integer and a string holding one. Anything else,
// including "1abc" and 1.0, is rejected.
type RoomId int

func (id *RoomId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid room id %s", data)
	}

	*id = RoomId(n)
	return nil
}

type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func NewMessage(msg types.ChatMessage) *ServerMessage {
	return &ServerMessage{
		Type:    TypeNewMessage,
		Payload: msg,
	}
}

func parseClientMessage(raw []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedFrame, err)
	}

	if msg.Type == "" {
		return nil, fmt.Errorf("%w: missing type", errMalformedFrame)
	}

	return &msg, nil
}

func (m *ClientMessage) sendMessage() (*SendMessage, error) {
	if len(m.Payload) == 0 {
		return nil, fmt.Errorf("%w: missing payload", errMalformedFrame)
	}

	var payload SendMessage
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedFrame, err)
	}

	if err := validation.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedFrame, err)
	}

	return &payload, nil
}

func serializeMessage(msg *ServerMessage) ([]byte, error) {
	return json.Marshal(msg)
}

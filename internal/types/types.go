package types

import (
	"github.com/npezzotti/creatorhub/internal/database"
)

type Stats struct {
	TotalVolume    string `json:"totalVolume"`
	ActiveCreators string `json:"activeCreators"`
	TokenHolders   string `json:"tokenHolders"`
	Satisfaction   string `json:"satisfaction"`
}

type ChatRoom struct {
	database.ChatRoom
	Creator *database.Creator `json:"creator,omitempty"`
}

type ChatMessage struct {
	database.ChatMessage
	Sender *database.User `json:"sender,omitempty"`
}

type Holding struct {
	Creator database.Creator `json:"creator"`
	Tokens  string           `json:"tokens"`
	Value   string           `json:"value"`
	Change  string           `json:"change"`
}

type Portfolio struct {
	TotalValue string           `json:"totalValue"`
	DayChange  string           `json:"dayChange"`
	KeysOwned  int              `json:"keysOwned"`
	Holdings   []Holding        `json:"holdings"`
	Tokens     []database.Token `json:"tokens"`
}

type CreateBookingRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

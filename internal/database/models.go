package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsCreator bool      `json:"isCreator"`
	Avatar    string    `json:"avatar,omitempty"`
	SocialId  string    `json:"socialId,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Creator struct {
	Id              int               `json:"id"`
	UserId          int               `json:"userId"`
	DisplayName     string            `json:"displayName"`
	Bio             string            `json:"bio"`
	ProfileImage    string            `json:"profileImage,omitempty"`
	CoverImage      string            `json:"coverImage,omitempty"`
	TokenSymbol     string            `json:"tokenSymbol"`
	CurrentPrice    decimal.Decimal   `json:"currentPrice"`
	TotalVolume     decimal.Decimal   `json:"totalVolume"`
	TokenSupply     decimal.Decimal   `json:"tokenSupply"`
	HolderCount     int               `json:"holderCount"`
	ChatMemberCount int               `json:"chatMemberCount"`
	IsOnline        bool              `json:"isOnline"`
	Ranking         int               `json:"ranking"`
	SocialLinks     map[string]string `json:"socialLinks,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type Token struct {
	Id        int             `json:"id"`
	HolderId  int             `json:"holderId"`
	CreatorId int             `json:"creatorId"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

type Trade struct {
	Id        int             `json:"id"`
	TraderId  int             `json:"traderId"`
	CreatorId int             `json:"creatorId"`
	Side      TradeSide       `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ChatRoom struct {
	Id          int             `json:"id"`
	CreatorId   int             `json:"creatorId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	MinTokens   decimal.Decimal `json:"minTokens"`
	MemberCount int             `json:"memberCount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ChatMessage struct {
	Id        int       `json:"id"`
	RoomId    int       `json:"roomId"`
	SenderId  int       `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Wallet struct {
	Id         int             `json:"id"`
	UserId     int             `json:"userId"`
	EthBalance decimal.Decimal `json:"ethBalance"`
	UsdBalance decimal.Decimal `json:"usdBalance"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Event struct {
	Id          int             `json:"id"`
	HostId      int             `json:"hostId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	StartsAt    time.Time       `json:"startsAt"`
	EndsAt      time.Time       `json:"endsAt"`
	Capacity    int             `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type EventBooking struct {
	Id        int       `json:"id"`
	EventId   int       `json:"eventId"`
	UserId    int       `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Review struct {
	Id         int       `json:"id"`
	EventId    int       `json:"eventId"`
	HostId     int       `json:"hostId"`
	ReviewerId int       `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Partnership struct {
	Id        int             `json:"id"`
	BrandId   int             `json:"brandId"`
	CreatorId int             `json:"creatorId"`
	Title     string          `json:"title"`
	Terms     string          `json:"terms"`
	Budget    decimal.Decimal `json:"budget"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Update types carry the fields of a partial update. A nil field is left
// untouched by the merge.

type CreatorUpdate struct {
	DisplayName     *string
	Bio             *string
	ProfileImage    *string
	CoverImage      *string
	CurrentPrice    *decimal.Decimal
	TotalVolume     *decimal.Decimal
	TokenSupply     *decimal.Decimal
	HolderCount     *int
	ChatMemberCount *int
	IsOnline        *bool
	Ranking         *int
	SocialLinks     map[string]string
}

type WalletUpdate struct {
	EthBalance *decimal.Decimal
	UsdBalance *decimal.Decimal
}

type EventUpdate struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Capacity    *int
	Price       *decimal.Decimal
	Status      *string
}

type PartnershipUpdate struct {
	Title  *string
	Terms  *string
	Budget *decimal.Decimal
	Status *string
}

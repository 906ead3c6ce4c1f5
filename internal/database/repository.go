package database

import "errors"

// ErrNotFound is returned when a single record lookup or update targets an
// id that is not in the collection.
var ErrNotFound = errors.New("record not found")

type CreatorHubRepository interface {
	GetUser(id int) (User, error)
	GetUserByEmail(email string) (User, error)
	CreateUser(user User) (User, error)

	GetCreator(id int) (Creator, error)
	GetCreatorByUserId(userId int) (Creator, error)
	GetAllCreators() ([]Creator, error)
	GetTopCreators(limit int) ([]Creator, error)
	CreateCreator(creator Creator) (Creator, error)
	UpdateCreator(id int, update CreatorUpdate) (Creator, error)

	GetUserTokens(userId int) ([]Token, error)
	GetCreatorTokens(creatorId int) ([]Token, error)
	CreateToken(token Token) (Token, error)

	GetTradesByCreator(creatorId int) ([]Trade, error)
	GetTradesByUser(userId int) ([]Trade, error)
	CreateTrade(trade Trade) (Trade, error)

	GetChatRooms() ([]ChatRoom, error)
	GetChatRoom(id int) (ChatRoom, error)
	GetChatMessages(roomId int) ([]ChatMessage, error)
	CreateChatMessage(msg ChatMessage) (ChatMessage, error)

	GetUserWallet(userId int) (Wallet, error)
	CreateWallet(userId int) (Wallet, error)
	UpdateWallet(userId int, update WalletUpdate) (Wallet, error)

	GetEvent(id int) (Event, error)
	GetEventsByHost(hostId int) ([]Event, error)
	GetAllEvents() ([]Event, error)
	CreateEvent(event Event) (Event, error)
	UpdateEvent(id int, update EventUpdate) (Event, error)

	GetEventBookings(eventId int) ([]EventBooking, error)
	GetUserBookings(userId int) ([]EventBooking, error)
	CreateEventBooking(booking EventBooking) (EventBooking, error)

	GetEventReviews(eventId int) ([]Review, error)
	GetHostReviews(hostId int) ([]Review, error)
	CreateReview(review Review) (Review, error)

	GetPartnership(id int) (Partnership, error)
	GetBrandPartnerships(brandId int) ([]Partnership, error)
	GetCreatorPartnerships(creatorId int) ([]Partnership, error)
	CreatePartnership(p Partnership) (Partnership, error)
	UpdatePartnership(id int, update PartnershipUpdate) (Partnership, error)
}

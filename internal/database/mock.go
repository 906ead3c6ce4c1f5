package database

import (
	"github.com/stretchr/testify/mock"
)

type MockCreatorHubRepository struct {
	mock.Mock
}

func (m *MockCreatorHubRepository) GetUser(id int) (User, error) {
	args := m.Called(id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCreatorHubRepository) GetUserByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCreatorHubRepository) CreateUser(user User) (User, error) {
	args := m.Called(user)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockCreatorHubRepository) GetCreator(id int) (Creator, error) {
	args := m.Called(id)
	return args.Get(0).(Creator), args.Error(1)
}

func (m *MockCreatorHubRepository) GetCreatorByUserId(userId int) (Creator, error) {
	args := m.Called(userId)
	return args.Get(0).(Creator), args.Error(1)
}

func (m *MockCreatorHubRepository) GetAllCreators() ([]Creator, error) {
	args := m.Called()
	if v, ok := args.Get(0).([]Creator); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetTopCreators(limit int) ([]Creator, error) {
	args := m.Called(limit)
	if v, ok := args.Get(0).([]Creator); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateCreator(creator Creator) (Creator, error) {
	args := m.Called(creator)
	return args.Get(0).(Creator), args.Error(1)
}

func (m *MockCreatorHubRepository) UpdateCreator(id int, update CreatorUpdate) (Creator, error) {
	args := m.Called(id, update)
	return args.Get(0).(Creator), args.Error(1)
}

func (m *MockCreatorHubRepository) GetUserTokens(userId int) ([]Token, error) {
	args := m.Called(userId)
	if v, ok := args.Get(0).([]Token); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetCreatorTokens(creatorId int) ([]Token, error) {
	args := m.Called(creatorId)
	if v, ok := args.Get(0).([]Token); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateToken(token Token) (Token, error) {
	args := m.Called(token)
	return args.Get(0).(Token), args.Error(1)
}

func (m *MockCreatorHubRepository) GetTradesByCreator(creatorId int) ([]Trade, error) {
	args := m.Called(creatorId)
	if v, ok := args.Get(0).([]Trade); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetTradesByUser(userId int) ([]Trade, error) {
	args := m.Called(userId)
	if v, ok := args.Get(0).([]Trade); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateTrade(trade Trade) (Trade, error) {
	args := m.Called(trade)
	return args.Get(0).(Trade), args.Error(1)
}

func (m *MockCreatorHubRepository) GetChatRooms() ([]ChatRoom, error) {
	args := m.Called()
	if v, ok := args.Get(0).([]ChatRoom); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetChatRoom(id int) (ChatRoom, error) {
	args := m.Called(id)
	return args.Get(0).(ChatRoom), args.Error(1)
}

func (m *MockCreatorHubRepository) GetChatMessages(roomId int) ([]ChatMessage, error) {
	args := m.Called(roomId)
	if v, ok := args.Get(0).([]ChatMessage); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateChatMessage(msg ChatMessage) (ChatMessage, error) {
	args := m.Called(msg)
	return args.Get(0).(ChatMessage), args.Error(1)
}

func (m *MockCreatorHubRepository) GetUserWallet(userId int) (Wallet, error) {
	args := m.Called(userId)
	return args.Get(0).(Wallet), args.Error(1)
}

func (m *MockCreatorHubRepository) CreateWallet(userId int) (Wallet, error) {
	args := m.Called(userId)
	return args.Get(0).(Wallet), args.Error(1)
}

func (m *MockCreatorHubRepository) UpdateWallet(userId int, update WalletUpdate) (Wallet, error) {
	args := m.Called(userId, update)
	return args.Get(0).(Wallet), args.Error(1)
}

func (m *MockCreatorHubRepository) GetEvent(id int) (Event, error) {
	args := m.Called(id)
	return args.Get(0).(Event), args.Error(1)
}

func (m *MockCreatorHubRepository) GetEventsByHost(hostId int) ([]Event, error) {
	args := m.Called(hostId)
	if v, ok := args.Get(0).([]Event); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetAllEvents() ([]Event, error) {
	args := m.Called()
	if v, ok := args.Get(0).([]Event); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateEvent(event Event) (Event, error) {
	args := m.Called(event)
	return args.Get(0).(Event), args.Error(1)
}

func (m *MockCreatorHubRepository) UpdateEvent(id int, update EventUpdate) (Event, error) {
	args := m.Called(id, update)
	return args.Get(0).(Event), args.Error(1)
}

func (m *MockCreatorHubRepository) GetEventBookings(eventId int) ([]EventBooking, error) {
	args := m.Called(eventId)
	if v, ok := args.Get(0).([]EventBooking); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetUserBookings(userId int) ([]EventBooking, error) {
	args := m.Called(userId)
	if v, ok := args.Get(0).([]EventBooking); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateEventBooking(booking EventBooking) (EventBooking, error) {
	args := m.Called(booking)
	return args.Get(0).(EventBooking), args.Error(1)
}

func (m *MockCreatorHubRepository) GetEventReviews(eventId int) ([]Review, error) {
	args := m.Called(eventId)
	if v, ok := args.Get(0).([]Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetHostReviews(hostId int) ([]Review, error) {
	args := m.Called(hostId)
	if v, ok := args.Get(0).([]Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreateReview(review Review) (Review, error) {
	args := m.Called(review)
	return args.Get(0).(Review), args.Error(1)
}

func (m *MockCreatorHubRepository) GetPartnership(id int) (Partnership, error) {
	args := m.Called(id)
	return args.Get(0).(Partnership), args.Error(1)
}

func (m *MockCreatorHubRepository) GetBrandPartnerships(brandId int) ([]Partnership, error) {
	args := m.Called(brandId)
	if v, ok := args.Get(0).([]Partnership); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) GetCreatorPartnerships(creatorId int) ([]Partnership, error) {
	args := m.Called(creatorId)
	if v, ok := args.Get(0).([]Partnership); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorHubRepository) CreatePartnership(p Partnership) (Partnership, error) {
	args := m.Called(p)
	return args.Get(0).(Partnership), args.Error(1)
}

func (m *MockCreatorHubRepository) UpdatePartnership(id int, update PartnershipUpdate) (Partnership, error) {
	args := m.Called(id, update)
	return args.Get(0).(Partnership), args.Error(1)
}

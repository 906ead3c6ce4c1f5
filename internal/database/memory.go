package database

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const defaultTopCreatorsLimit = 10

var _ CreatorHubRepository = (*MemCreatorHubRepository)(nil)

// MemCreatorHubRepository keeps every collection in process memory. A single
// lock guards all collections so readers never observe a half-applied write.
type MemCreatorHubRepository struct {
	mu     sync.RWMutex
	now    func() time.Time
	seeded atomic.Bool

	users         *collection[User]
	creators      *collection[Creator]
	tokens        *collection[Token]
	trades        *collection[Trade]
	chatRooms     *collection[ChatRoom]
	chatMessages  *collection[ChatMessage]
	wallets       *collection[Wallet]
	events        *collection[Event]
	eventBookings *collection[EventBooking]
	reviews       *collection[Review]
	partnerships  *collection[Partnership]
}

func NewMemCreatorHubRepository() *MemCreatorHubRepository {
	return &MemCreatorHubRepository{
		now:           Now,
		users:         newCollection[User](),
		creators:      newCollection[Creator](),
		tokens:        newCollection[Token](),
		trades:        newCollection[Trade](),
		chatRooms:     newCollection[ChatRoom](),
		chatMessages:  newCollection[ChatMessage](),
		wallets:       newCollection[Wallet](),
		events:        newCollection[Event](),
		eventBookings: newCollection[EventBooking](),
		reviews:       newCollection[Review](),
		partnerships:  newCollection[Partnership](),
	}
}

// Now is the timestamp source for created and updated times.
func Now() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}

func byRanking(a, b Creator) int {
	if c := cmp.Compare(a.Ranking, b.Ranking); c != 0 {
		return c
	}
	return cmp.Compare(a.Id, b.Id)
}

// clone detaches the social links from the stored record.
func (c Creator) clone() Creator {
	c.SocialLinks = maps.Clone(c.SocialLinks)
	return c
}

func cloneCreators(creators []Creator) []Creator {
	for i := range creators {
		creators[i] = creators[i].clone()
	}
	return creators
}

func (m *MemCreatorHubRepository) GetUser(id int) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.users.get(id); ok {
		return u, nil
	}
	return User{}, ErrNotFound
}

func (m *MemCreatorHubRepository) GetUserByEmail(email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.users.find(func(u User) bool { return u.Email == email }); ok {
		return u, nil
	}
	return User{}, ErrNotFound
}

func (m *MemCreatorHubRepository) CreateUser(user User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.users.insert(func(id int) User {
		user.Id = id
		user.CreatedAt = m.now()
		return user
	}), nil
}

func (m *MemCreatorHubRepository) GetCreator(id int) (Creator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if c, ok := m.creators.get(id); ok {
		return c.clone(), nil
	}
	return Creator{}, ErrNotFound
}

func (m *MemCreatorHubRepository) GetCreatorByUserId(userId int) (Creator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if c, ok := m.creators.find(func(c Creator) bool { return c.UserId == userId }); ok {
		return c.clone(), nil
	}
	return Creator{}, ErrNotFound
}

func (m *MemCreatorHubRepository) GetAllCreators() ([]Creator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	creators := cloneCreators(m.creators.values())
	slices.SortStableFunc(creators, byRanking)
	return creators, nil
}

func (m *MemCreatorHubRepository) GetTopCreators(limit int) ([]Creator, error) {
	if limit <= 0 {
		limit = defaultTopCreatorsLimit
	}

	creators, err := m.GetAllCreators()
	if err != nil {
		return nil, err
	}

	if len(creators) > limit {
		creators = creators[:limit]
	}
	return creators, nil
}

func (m *MemCreatorHubRepository) CreateCreator(creator Creator) (Creator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.creators.insert(func(id int) Creator {
		creator.Id = id
		creator.SocialLinks = maps.Clone(creator.SocialLinks)
		creator.CreatedAt = m.now()
		return creator
	}).clone(), nil
}

func (m *MemCreatorHubRepository) UpdateCreator(id int, update CreatorUpdate) (Creator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.creators.get(id)
	if !ok {
		return Creator{}, ErrNotFound
	}

	if update.DisplayName != nil {
		c.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		c.Bio = *update.Bio
	}
	if update.ProfileImage != nil {
		c.ProfileImage = *update.ProfileImage
	}
	if update.CoverImage != nil {
		c.CoverImage = *update.CoverImage
	}
	if update.CurrentPrice != nil {
		c.CurrentPrice = *update.CurrentPrice
	}
	if update.TotalVolume != nil {
		c.TotalVolume = *update.TotalVolume
	}
	if update.TokenSupply != nil {
		c.TokenSupply = *update.TokenSupply
	}
	if update.HolderCount != nil {
		c.HolderCount = *update.HolderCount
	}
	if update.ChatMemberCount != nil {
		c.ChatMemberCount = *update.ChatMemberCount
	}
	if update.IsOnline != nil {
		c.IsOnline = *update.IsOnline
	}
	if update.Ranking != nil {
		c.Ranking = *update.Ranking
	}
	if update.SocialLinks != nil {
		c.SocialLinks = maps.Clone(update.SocialLinks)
	}

	m.creators.put(id, c)
	return c.clone(), nil
}

func (m *MemCreatorHubRepository) GetUserTokens(userId int) ([]Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tokens.filter(func(t Token) bool { return t.HolderId == userId }), nil
}

func (m *MemCreatorHubRepository) GetCreatorTokens(creatorId int) ([]Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tokens.filter(func(t Token) bool { return t.CreatorId == creatorId }), nil
}

func (m *MemCreatorHubRepository) CreateToken(token Token) (Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokens.insert(func(id int) Token {
		token.Id = id
		token.CreatedAt = m.now()
		return token
	}), nil
}

func (m *MemCreatorHubRepository) GetTradesByCreator(creatorId int) ([]Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.trades.filter(func(t Trade) bool { return t.CreatorId == creatorId }), nil
}

func (m *MemCreatorHubRepository) GetTradesByUser(userId int) ([]Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.trades.filter(func(t Trade) bool { return t.TraderId == userId }), nil
}

func (m *MemCreatorHubRepository) CreateTrade(trade Trade) (Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.trades.insert(func(id int) Trade {
		trade.Id = id
		trade.CreatedAt = m.now()
		return trade
	}), nil
}

func (m *MemCreatorHubRepository) GetChatRooms() ([]ChatRoom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.chatRooms.values(), nil
}

func (m *MemCreatorHubRepository) GetChatRoom(id int) (ChatRoom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if r, ok := m.chatRooms.get(id); ok {
		return r, nil
	}
	return ChatRoom{}, ErrNotFound
}

func (m *MemCreatorHubRepository) createChatRoom(room ChatRoom) ChatRoom {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chatRooms.insert(func(id int) ChatRoom {
		room.Id = id
		room.CreatedAt = m.now()
		return room
	})
}

// GetChatMessages returns the messages of a room oldest first. Messages with
// the same timestamp keep their id order.
func (m *MemCreatorHubRepository) GetChatMessages(roomId int) ([]ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msgs := m.chatMessages.filter(func(msg ChatMessage) bool { return msg.RoomId == roomId })
	slices.SortStableFunc(msgs, func(a, b ChatMessage) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return msgs, nil
}

func (m *MemCreatorHubRepository) CreateChatMessage(msg ChatMessage) (ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chatMessages.insert(func(id int) ChatMessage {
		msg.Id = id
		msg.CreatedAt = m.now()
		return msg
	}), nil
}

func (m *MemCreatorHubRepository) GetUserWallet(userId int) (Wallet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if w, ok := m.wallets.find(func(w Wallet) bool { return w.UserId == userId }); ok {
		return w, nil
	}
	return Wallet{}, ErrNotFound
}

func (m *MemCreatorHubRepository) CreateWallet(userId int) (Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.wallets.insert(func(id int) Wallet {
		return Wallet{
			Id:        id,
			UserId:    userId,
			CreatedAt: m.now(),
		}
	}), nil
}

func (m *MemCreatorHubRepository) UpdateWallet(userId int, update WalletUpdate) (Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets.find(func(w Wallet) bool { return w.UserId == userId })
	if !ok {
		return Wallet{}, ErrNotFound
	}

	if update.EthBalance != nil {
		w.EthBalance = *update.EthBalance
	}
	if update.UsdBalance != nil {
		w.UsdBalance = *update.UsdBalance
	}

	m.wallets.put(w.Id, w)
	return w, nil
}

func (m *MemCreatorHubRepository) GetEvent(id int) (Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.events.get(id); ok {
		return e, nil
	}
	return Event{}, ErrNotFound
}

func (m *MemCreatorHubRepository) GetEventsByHost(hostId int) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.events.filter(func(e Event) bool { return e.HostId == hostId }), nil
}

func (m *MemCreatorHubRepository) GetAllEvents() ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.events.values(), nil
}

func (m *MemCreatorHubRepository) CreateEvent(event Event) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.events.insert(func(id int) Event {
		now := m.now()
		event.Id = id
		event.CreatedAt = now
		event.UpdatedAt = now
		return event
	}), nil
}

func (m *MemCreatorHubRepository) UpdateEvent(id int, update EventUpdate) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events.get(id)
	if !ok {
		return Event{}, ErrNotFound
	}

	if update.Title != nil {
		e.Title = *update.Title
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	if update.StartsAt != nil {
		e.StartsAt = *update.StartsAt
	}
	if update.EndsAt != nil {
		e.EndsAt = *update.EndsAt
	}
	if update.Capacity != nil {
		e.Capacity = *update.Capacity
	}
	if update.Price != nil {
		e.Price = *update.Price
	}
	if update.Status != nil {
		e.Status = *update.Status
	}
	e.UpdatedAt = m.now()

	m.events.put(id, e)
	return e, nil
}

func (m *MemCreatorHubRepository) GetEventBookings(eventId int) ([]EventBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.eventBookings.filter(func(b EventBooking) bool { return b.EventId == eventId }), nil
}

func (m *MemCreatorHubRepository) GetUserBookings(userId int) ([]EventBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.eventBookings.filter(func(b EventBooking) bool { return b.UserId == userId }), nil
}

func (m *MemCreatorHubRepository) CreateEventBooking(booking EventBooking) (EventBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.eventBookings.insert(func(id int) EventBooking {
		booking.Id = id
		booking.CreatedAt = m.now()
		return booking
	}), nil
}

func (m *MemCreatorHubRepository) GetEventReviews(eventId int) ([]Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.reviews.filter(func(r Review) bool { return r.EventId == eventId }), nil
}

func (m *MemCreatorHubRepository) GetHostReviews(hostId int) ([]Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.reviews.filter(func(r Review) bool { return r.HostId == hostId }), nil
}

func (m *MemCreatorHubRepository) CreateReview(review Review) (Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reviews.insert(func(id int) Review {
		review.Id = id
		review.CreatedAt = m.now()
		return review
	}), nil
}

func (m *MemCreatorHubRepository) GetPartnership(id int) (Partnership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if p, ok := m.partnerships.get(id); ok {
		return p, nil
	}
	return Partnership{}, ErrNotFound
}

func (m *MemCreatorHubRepository) GetBrandPartnerships(brandId int) ([]Partnership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.partnerships.filter(func(p Partnership) bool { return p.BrandId == brandId }), nil
}

func (m *MemCreatorHubRepository) GetCreatorPartnerships(creatorId int) ([]Partnership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.partnerships.filter(func(p Partnership) bool { return p.CreatorId == creatorId }), nil
}

func (m *MemCreatorHubRepository) CreatePartnership(p Partnership) (Partnership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.partnerships.insert(func(id int) Partnership {
		now := m.now()
		p.Id = id
		p.CreatedAt = now
		p.UpdatedAt = now
		return p
	}), nil
}

func (m *MemCreatorHubRepository) UpdatePartnership(id int, update PartnershipUpdate) (Partnership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.partnerships.get(id)
	if !ok {
		return Partnership{}, ErrNotFound
	}

	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Terms != nil {
		p.Terms = *update.Terms
	}
	if update.Budget != nil {
		p.Budget = *update.Budget
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	p.UpdatedAt = m.now()

	m.partnerships.put(id, p)
	return p, nil
}

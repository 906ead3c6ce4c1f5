package database

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededRepo returns a repository loaded with the demo data set.
func newSeededRepo(t *testing.T) *MemCreatorHubRepository {
	repo := NewMemCreatorHubRepository()
	require.NoError(t, repo.Seed(), "expected seed to succeed")
	return repo
}

// stepClock returns a clock that starts at start and moves by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func TestSeed(t *testing.T) {
	repo := newSeededRepo(t)

	creators, err := repo.GetAllCreators()
	assert.NoError(t, err)
	assert.Len(t, creators, 8, "expected eight seeded creators")

	rooms, err := repo.GetChatRooms()
	assert.NoError(t, err)
	assert.Len(t, rooms, 8, "expected eight seeded chat rooms")

	msgs, err := repo.GetChatMessages(1)
	assert.NoError(t, err)
	assert.Len(t, msgs, 3, "expected three seeded messages in room 1")

	for _, userId := range []int{4, 5} {
		w, err := repo.GetUserWallet(userId)
		assert.NoError(t, err)
		assert.True(t, decimal.RequireFromString("1.5").Equal(w.EthBalance), "unexpected eth balance %s", w.EthBalance)
		assert.True(t, decimal.RequireFromString("2500").Equal(w.UsdBalance), "unexpected usd balance %s", w.UsdBalance)
	}

	u, err := repo.GetUserByEmail("fan1@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 4, u.Id)
	assert.False(t, u.IsCreator)
}

func TestGetTopCreators(t *testing.T) {
	repo := newSeededRepo(t)

	// shuffle rankings so storage order differs from ranking order
	for id, ranking := range map[int]int{1: 8, 2: 3, 3: 1, 8: 2} {
		r := ranking
		_, err := repo.UpdateCreator(id, CreatorUpdate{Ranking: &r})
		require.NoError(t, err)
	}

	tcases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "limit below total", limit: 3, expected: 3},
		{name: "limit equal to total", limit: 8, expected: 8},
		{name: "limit above total", limit: 20, expected: 8},
		{name: "zero falls back to default", limit: 0, expected: 8},
		{name: "negative falls back to default", limit: -2, expected: 8},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			creators, err := repo.GetTopCreators(tc.limit)
			assert.NoError(t, err)
			assert.Len(t, creators, tc.expected)
			assert.True(t, slices.IsSortedFunc(creators, func(a, b Creator) int {
				return a.Ranking - b.Ranking
			}), "expected creators sorted by ranking")
		})
	}

	top, err := repo.GetTopCreators(1)
	assert.NoError(t, err)
	assert.Equal(t, 3, top[0].Id, "expected creator with ranking 1 first")
}

func TestGetTopCreators_DefaultLimit(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	for i := 0; i < 15; i++ {
		_, err := repo.CreateCreator(Creator{Ranking: 15 - i})
		require.NoError(t, err)
	}

	creators, err := repo.GetTopCreators(0)
	assert.NoError(t, err)
	assert.Len(t, creators, defaultTopCreatorsLimit)
	assert.Equal(t, 1, creators[0].Ranking)
	assert.Equal(t, 10, creators[9].Ranking)
}

func TestGetChatMessages_Order(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	// each create is stamped an hour earlier than the previous one
	repo.now = stepClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), -time.Hour)

	var created []ChatMessage
	for i, roomId := range []int{1, 2, 1, 1, 2} {
		msg, err := repo.CreateChatMessage(ChatMessage{RoomId: roomId, SenderId: i + 1, Content: "msg"})
		require.NoError(t, err)
		created = append(created, msg)
	}

	msgs, err := repo.GetChatMessages(1)
	assert.NoError(t, err)
	assert.Len(t, msgs, 3)
	for _, msg := range msgs {
		assert.Equal(t, 1, msg.RoomId, "expected only room 1 messages")
	}
	assert.True(t, slices.IsSortedFunc(msgs, func(a, b ChatMessage) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	}), "expected messages in chronological order")
	assert.Equal(t, created[3].Id, msgs[0].Id, "expected the latest insert to be the oldest message")

	empty, err := repo.GetChatMessages(42)
	assert.NoError(t, err)
	assert.NotNil(t, empty, "expected empty slice, not nil")
	assert.Empty(t, empty)
}

func TestGetChatMessages_SameTimestampKeepsIdOrder(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	for i := 0; i < 5; i++ {
		_, err := repo.CreateChatMessage(ChatMessage{RoomId: 1, Content: "same"})
		require.NoError(t, err)
	}

	msgs, err := repo.GetChatMessages(1)
	assert.NoError(t, err)
	for i, msg := range msgs {
		assert.Equal(t, i+1, msg.Id)
	}
}

func TestCreateThenGet(t *testing.T) {
	repo := newSeededRepo(t)

	before, err := repo.GetAllCreators()
	require.NoError(t, err)

	input := Creator{
		Id:           999,
		UserId:       5,
		DisplayName:  "New Creator",
		TokenSymbol:  "NEW",
		CurrentPrice: decimal.RequireFromString("0.010"),
		Ranking:      9,
		SocialLinks:  map[string]string{"x": "@new"},
	}

	created, err := repo.CreateCreator(input)
	assert.NoError(t, err)
	assert.Equal(t, 9, created.Id, "expected caller supplied id to be ignored")
	assert.False(t, created.CreatedAt.IsZero(), "expected creation time to be stamped")
	for _, c := range before {
		assert.NotEqual(t, c.Id, created.Id, "expected a fresh id")
	}

	got, err := repo.GetCreator(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	input.SocialLinks["x"] = "@changed"
	got, err = repo.GetCreator(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "@new", got.SocialLinks["x"], "expected stored record not to alias caller map")
}

func TestIdsAreNeverReused(t *testing.T) {
	repo := NewMemCreatorHubRepository()

	seen := make(map[int]struct{})
	last := 0
	for i := 0; i < 10; i++ {
		r, err := repo.CreateReview(Review{EventId: 1, Rating: 5})
		require.NoError(t, err)
		_, dup := seen[r.Id]
		assert.False(t, dup, "id %d handed out twice", r.Id)
		assert.Greater(t, r.Id, last, "expected strictly increasing ids")
		seen[r.Id] = struct{}{}
		last = r.Id
	}
}

func TestUpdateCreator(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		repo := newSeededRepo(t)
		before, err := repo.GetAllCreators()
		require.NoError(t, err)

		name := "ghost"
		_, err = repo.UpdateCreator(999, CreatorUpdate{DisplayName: &name})
		assert.ErrorIs(t, err, ErrNotFound)

		after, err := repo.GetAllCreators()
		require.NoError(t, err)
		assert.Equal(t, before, after, "expected collection to be unchanged")
	})

	t.Run("partial update", func(t *testing.T) {
		repo := newSeededRepo(t)
		orig, err := repo.GetCreator(2)
		require.NoError(t, err)

		online := false
		price := decimal.RequireFromString("0.123")
		updated, err := repo.UpdateCreator(2, CreatorUpdate{IsOnline: &online, CurrentPrice: &price})
		assert.NoError(t, err)

		expected := orig
		expected.IsOnline = false
		expected.CurrentPrice = price
		assert.Equal(t, expected, updated, "expected only supplied fields to change")

		got, err := repo.GetCreator(2)
		assert.NoError(t, err)
		assert.Equal(t, updated, got, "expected update to be persisted")
	})
}

func TestUpdateEvent_RefreshesUpdatedAt(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	repo.now = stepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Minute)

	e, err := repo.CreateEvent(Event{HostId: 1, Title: "launch", Capacity: 10})
	require.NoError(t, err)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	status := "cancelled"
	updated, err := repo.UpdateEvent(e.Id, EventUpdate{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, "launch", updated.Title)
	assert.Equal(t, 10, updated.Capacity)
	assert.Equal(t, e.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(e.UpdatedAt), "expected updatedAt to move forward")

	_, err = repo.UpdateEvent(42, EventUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPartnerships(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	repo.now = stepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)

	p1, err := repo.CreatePartnership(Partnership{BrandId: 10, CreatorId: 1, Title: "energy drink"})
	require.NoError(t, err)
	_, err = repo.CreatePartnership(Partnership{BrandId: 11, CreatorId: 1, Title: "headset"})
	require.NoError(t, err)
	_, err = repo.CreatePartnership(Partnership{BrandId: 10, CreatorId: 2, Title: "apparel"})
	require.NoError(t, err)

	byCreator, err := repo.GetCreatorPartnerships(1)
	assert.NoError(t, err)
	assert.Len(t, byCreator, 2)

	byBrand, err := repo.GetBrandPartnerships(10)
	assert.NoError(t, err)
	assert.Len(t, byBrand, 2)

	budget := decimal.NewFromInt(5000)
	updated, err := repo.UpdatePartnership(p1.Id, PartnershipUpdate{Budget: &budget})
	assert.NoError(t, err)
	assert.True(t, budget.Equal(updated.Budget))
	assert.Equal(t, "energy drink", updated.Title)
	assert.True(t, updated.UpdatedAt.After(p1.UpdatedAt))

	_, err = repo.GetPartnership(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWallets(t *testing.T) {
	repo := NewMemCreatorHubRepository()

	w, err := repo.CreateWallet(7)
	require.NoError(t, err)
	assert.True(t, w.EthBalance.IsZero())
	assert.True(t, w.UsdBalance.IsZero())

	usd := decimal.RequireFromString("10.50")
	updated, err := repo.UpdateWallet(7, WalletUpdate{UsdBalance: &usd})
	assert.NoError(t, err)
	assert.Equal(t, w.Id, updated.Id)
	assert.True(t, usd.Equal(updated.UsdBalance))
	assert.True(t, updated.EthBalance.IsZero())

	_, err = repo.UpdateWallet(8, WalletUpdate{UsdBalance: &usd})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetUserWallet(8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForeignKeyScans(t *testing.T) {
	repo := NewMemCreatorHubRepository()

	for _, tok := range []Token{{HolderId: 4, CreatorId: 1}, {HolderId: 4, CreatorId: 2}, {HolderId: 5, CreatorId: 1}} {
		_, err := repo.CreateToken(tok)
		require.NoError(t, err)
	}
	for _, tr := range []Trade{{TraderId: 4, CreatorId: 1, Side: TradeSideBuy}, {TraderId: 5, CreatorId: 1, Side: TradeSideSell}} {
		_, err := repo.CreateTrade(tr)
		require.NoError(t, err)
	}
	for _, b := range []EventBooking{{EventId: 1, UserId: 4}, {EventId: 2, UserId: 4}, {EventId: 1, UserId: 5}} {
		_, err := repo.CreateEventBooking(b)
		require.NoError(t, err)
	}
	for _, e := range []Event{{HostId: 1}, {HostId: 2}, {HostId: 1}} {
		_, err := repo.CreateEvent(e)
		require.NoError(t, err)
	}
	for _, r := range []Review{{EventId: 1, HostId: 1}, {EventId: 3, HostId: 1}, {EventId: 2, HostId: 2}} {
		_, err := repo.CreateReview(r)
		require.NoError(t, err)
	}

	tcases := []struct {
		name     string
		count    func() (int, error)
		expected int
	}{
		{"user tokens", func() (int, error) { v, err := repo.GetUserTokens(4); return len(v), err }, 2},
		{"creator tokens", func() (int, error) { v, err := repo.GetCreatorTokens(1); return len(v), err }, 2},
		{"trades by creator", func() (int, error) { v, err := repo.GetTradesByCreator(1); return len(v), err }, 2},
		{"trades by user", func() (int, error) { v, err := repo.GetTradesByUser(5); return len(v), err }, 1},
		{"event bookings", func() (int, error) { v, err := repo.GetEventBookings(1); return len(v), err }, 2},
		{"user bookings", func() (int, error) { v, err := repo.GetUserBookings(4); return len(v), err }, 2},
		{"events by host", func() (int, error) { v, err := repo.GetEventsByHost(1); return len(v), err }, 2},
		{"all events", func() (int, error) { v, err := repo.GetAllEvents(); return len(v), err }, 3},
		{"event reviews", func() (int, error) { v, err := repo.GetEventReviews(2); return len(v), err }, 1},
		{"host reviews", func() (int, error) { v, err := repo.GetHostReviews(1); return len(v), err }, 2},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.count()
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, n)
		})
	}
}

func TestGetMissingRecords(t *testing.T) {
	repo := NewMemCreatorHubRepository()

	_, err := repo.GetUser(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetCreator(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetCreatorByUserId(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetChatRoom(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetEvent(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeed_SecondCallIsNoop(t *testing.T) {
	repo := newSeededRepo(t)
	require.NoError(t, repo.Seed())

	creators, err := repo.GetAllCreators()
	require.NoError(t, err)
	assert.Len(t, creators, 8, "expected seed data to be loaded once")

	_, err = repo.GetUser(6)
	assert.ErrorIs(t, err, ErrNotFound, "expected no duplicate users")
}

func TestCreatorSocialLinksAreCopied(t *testing.T) {
	repo := NewMemCreatorHubRepository()
	created, err := repo.CreateCreator(Creator{UserId: 1, Ranking: 1, SocialLinks: map[string]string{"x": "orig"}})
	require.NoError(t, err)
	created.SocialLinks["x"] = "changed"

	tcases := []struct {
		name string
		read func() (Creator, error)
	}{
		{
			name: "GetCreator",
			read: func() (Creator, error) { return repo.GetCreator(created.Id) },
		},
		{
			name: "GetCreatorByUserId",
			read: func() (Creator, error) { return repo.GetCreatorByUserId(1) },
		},
		{
			name: "GetAllCreators",
			read: func() (Creator, error) {
				all, err := repo.GetAllCreators()
				if err != nil {
					return Creator{}, err
				}
				return all[0], nil
			},
		},
		{
			name: "GetTopCreators",
			read: func() (Creator, error) {
				top, err := repo.GetTopCreators(1)
				if err != nil {
					return Creator{}, err
				}
				return top[0], nil
			},
		},
		{
			name: "UpdateCreator",
			read: func() (Creator, error) {
				ranking := 1
				return repo.UpdateCreator(created.Id, CreatorUpdate{Ranking: &ranking})
			},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.read()
			require.NoError(t, err)
			c.SocialLinks["x"] = "changed by " + tc.name

			stored, err := repo.GetCreator(created.Id)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"x": "orig"}, stored.SocialLinks)
		})
	}
}

package database

import (
	"time"

	"github.com/shopspring/decimal"
)

const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + imageParams
}

// Seed loads the fixed demo data set. Only the first call loads anything;
// later calls are no-ops.
func (m *MemCreatorHubRepository) Seed() error {
	if !m.seeded.CompareAndSwap(false, true) {
		return nil
	}

	users := []User{
		{Username: "sophia_rose", Email: "sophia@example.com", IsCreator: true, Avatar: unsplash("photo-1544005313-94ddf0286df2")},
		{Username: "luna_star", Email: "luna@example.com", IsCreator: true, Avatar: unsplash("photo-1438761681033-6461ffad8d80")},
		{Username: "aria_divine", Email: "aria@example.com", IsCreator: true, Avatar: unsplash("photo-1534528741775-53994a69daeb")},
		{Username: "fan_user1", Email: "fan1@example.com"},
		{Username: "fan_user2", Email: "fan2@example.com"},
	}
	for _, u := range users {
		if _, err := m.CreateUser(u); err != nil {
			return err
		}
	}

	supply := decimal.NewFromInt(1_000_000)
	creators := []Creator{
		{
			UserId:          1,
			DisplayName:     "Bella Thorne",
			Bio:             "Actress, Director, OnlyFans Creator. 24M Instagram followers. Building Web3 empire 🚀",
			ProfileImage:    unsplash("photo-1494790108755-2616b612b47c"),
			TokenSymbol:     "BELLA",
			CurrentPrice:    decimal.RequireFromString("0.089"),
			TotalVolume:     decimal.NewFromInt(892000),
			HolderCount:     8900,
			ChatMemberCount: 4200,
			IsOnline:        true,
			Ranking:         1,
		},
		{
			UserId:          2,
			DisplayName:     "Tana Mongeau",
			Bio:             "YouTuber, OnlyFans Creator, Podcast Host. 5.4M YouTube subs. Chaos queen turned crypto queen 💎",
			ProfileImage:    unsplash("photo-1438761681033-6461ffad8d80"),
			TokenSymbol:     "TANA",
			CurrentPrice:    decimal.RequireFromString("0.067"),
			TotalVolume:     decimal.NewFromInt(456000),
			HolderCount:     6700,
			ChatMemberCount: 3100,
			IsOnline:        true,
			Ranking:         2,
		},
		{
			UserId:          3,
			DisplayName:     "Amouranth",
			Bio:             "Top OnlyFans Creator, Twitch Streamer, Business Mogul. 6M+ across platforms. ASMR to Assets 📈",
			ProfileImage:    unsplash("photo-1534528741775-53994a69daeb"),
			TokenSymbol:     "AMOUR",
			CurrentPrice:    decimal.RequireFromString("0.078"),
			TotalVolume:     decimal.NewFromInt(723000),
			HolderCount:     7800,
			ChatMemberCount: 3800,
			Ranking:         3,
		},
		{
			UserId:          4,
			DisplayName:     "Mia Khalifa",
			Bio:             "OnlyFans Creator, Sports Commentator, Business Owner. 27M Instagram followers. Redefining influence ⚡",
			ProfileImage:    unsplash("photo-1524504388940-b1c1722653e1"),
			TokenSymbol:     "MIA",
			CurrentPrice:    decimal.RequireFromString("0.092"),
			TotalVolume:     decimal.NewFromInt(1200000),
			HolderCount:     12000,
			ChatMemberCount: 5600,
			IsOnline:        true,
			Ranking:         4,
		},
		{
			UserId:          5,
			DisplayName:     "Corinna Kopf",
			Bio:             "Instagram Model, OnlyFans Star, Twitch Streamer. 6.5M Instagram followers. Gaming meets glamour 🎮",
			ProfileImage:    unsplash("photo-1524250502761-1ac6f2e30d43"),
			TokenSymbol:     "CORI",
			CurrentPrice:    decimal.RequireFromString("0.054"),
			TotalVolume:     decimal.NewFromInt(340000),
			HolderCount:     5400,
			ChatMemberCount: 2700,
			IsOnline:        true,
			Ranking:         5,
		},
		{
			UserId:          6,
			DisplayName:     "Lana Rhoades",
			Bio:             "OnlyFans Creator, Entrepreneur, Podcast Host. 16M Instagram followers. Mom boss building empire 👑",
			ProfileImage:    unsplash("photo-1529626455594-4ff0802cfb7e"),
			TokenSymbol:     "LANA",
			CurrentPrice:    decimal.RequireFromString("0.083"),
			TotalVolume:     decimal.NewFromInt(890000),
			HolderCount:     8300,
			ChatMemberCount: 4100,
			Ranking:         6,
		},
		{
			UserId:          7,
			DisplayName:     "Riley Reid",
			Bio:             "OnlyFans Top Creator, Adult Film Star, Business Woman. 4.2M Instagram followers. Authenticity pays 💰",
			ProfileImage:    unsplash("photo-1508214751196-bcfd4ca60f91"),
			TokenSymbol:     "RILEY",
			CurrentPrice:    decimal.RequireFromString("0.076"),
			TotalVolume:     decimal.NewFromInt(567000),
			HolderCount:     7600,
			ChatMemberCount: 3400,
			IsOnline:        true,
			Ranking:         7,
		},
		{
			UserId:          8,
			DisplayName:     "Pokimane",
			Bio:             "Twitch Streamer, Content Creator, OnlyFans Creator. 6.5M Twitch followers. Gaming queen goes Web3 🎯",
			ProfileImage:    unsplash("photo-1507003211169-0a1dd7228f2d"),
			TokenSymbol:     "POKI",
			CurrentPrice:    decimal.RequireFromString("0.061"),
			TotalVolume:     decimal.NewFromInt(423000),
			HolderCount:     6100,
			ChatMemberCount: 2900,
			IsOnline:        true,
			Ranking:         8,
		},
	}
	for _, c := range creators {
		c.TokenSupply = supply
		if _, err := m.CreateCreator(c); err != nil {
			return err
		}
	}

	minTokens := decimal.RequireFromString("1.0")
	rooms := []ChatRoom{
		{CreatorId: 1, Name: "Bella's VIP Club", Description: "Exclusive content and personal chats with actress & creator", MemberCount: 4200},
		{CreatorId: 2, Name: "Tana's Chaos Corner", Description: "Unfiltered conversations and exclusive content", MemberCount: 3100},
		{CreatorId: 3, Name: "Amouranth's ASMR Lounge", Description: "Exclusive ASMR content and business insights", MemberCount: 3800},
		{CreatorId: 4, Name: "Mia's Sports Bar", Description: "Sports commentary, exclusive content & life updates", MemberCount: 5600},
		{CreatorId: 5, Name: "Corinna's Gaming Den", Description: "Gaming content, exclusive streams & personal chats", MemberCount: 2700},
		{CreatorId: 6, Name: "Lana's Empire", Description: "Mom boss content, business tips & exclusive access", MemberCount: 4100},
		{CreatorId: 7, Name: "Riley's Authentic Space", Description: "Real talk, exclusive content & genuine connections", MemberCount: 3400},
		{CreatorId: 8, Name: "Poki's Gaming Lounge", Description: "Gaming streams, content creation tips & community", MemberCount: 2900},
	}
	for _, r := range rooms {
		r.MinTokens = minTokens
		m.createChatRoom(r)
	}

	messages := []ChatMessage{
		{RoomId: 1, SenderId: 1, Content: "Hey beautiful souls! 💕 Just dropped some exclusive content for my VIP members!"},
		{RoomId: 1, SenderId: 4, Content: "Can't wait to see it! You're amazing 🔥"},
		{RoomId: 1, SenderId: 5, Content: "Love being part of this exclusive community! 💎"},
	}
	for _, msg := range messages {
		if _, err := m.CreateChatMessage(msg); err != nil {
			return err
		}
	}

	for _, userId := range []int{4, 5} {
		if _, err := m.CreateWallet(userId); err != nil {
			return err
		}
		eth, usd := decimal.RequireFromString("1.5"), decimal.RequireFromString("2500.00")
		if _, err := m.UpdateWallet(userId, WalletUpdate{EthBalance: &eth, UsdBalance: &usd}); err != nil {
			return err
		}
	}

	start := m.now().Truncate(time.Hour).Add(7 * 24 * time.Hour)
	events := []Event{
		{
			HostId:      1,
			Title:       "Bella's Fan Meetup",
			Description: "An evening with the VIP club",
			Location:    "Los Angeles, CA",
			StartsAt:    start,
			EndsAt:      start.Add(3 * time.Hour),
			Capacity:    150,
			Price:       decimal.RequireFromString("0.05"),
			Status:      "scheduled",
		},
		{
			HostId:      3,
			Title:       "ASMR Live Session",
			Description: "Live recording with token holders",
			Location:    "Austin, TX",
			StartsAt:    start.Add(48 * time.Hour),
			EndsAt:      start.Add(50 * time.Hour),
			Capacity:    60,
			Price:       decimal.RequireFromString("0.08"),
			Status:      "scheduled",
		},
	}
	for _, e := range events {
		if _, err := m.CreateEvent(e); err != nil {
			return err
		}
	}

	return nil
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/npezzotti/creatorhub/internal/database"
	"github.com/npezzotti/creatorhub/internal/server"
	"github.com/npezzotti/creatorhub/internal/types"
	"github.com/npezzotti/creatorhub/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	filterRising    = "rising"
	filterHighValue = "high-value"
	filterVip       = "vip"

	defaultTopLimit = 10
	bookingPending  = "pending"
)

var highValueVolume = decimal.NewFromInt(30000)

func (s *CreatorHubApp) writeJson(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("json encode", zap.Error(err))
	}
}

func (s *CreatorHubApp) writeError(w http.ResponseWriter, errResp *ApiError) {
	if errResp.StatusCode >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(errResp))
	}
	s.writeJson(w, errResp.StatusCode, errResp)
}

// lookupError maps a failed single record lookup to a 404 or a 500.
func lookupError(err error, resource string) *ApiError {
	if errors.Is(err, database.ErrNotFound) {
		return NewNotFoundError(resource)
	}
	return NewInternalServerError(err)
}

func pathId(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func (s *CreatorHubApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *CreatorHubApp) getStats(w http.ResponseWriter, _ *http.Request) {
	creators, err := s.db.GetAllCreators()
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, types.Stats{
		TotalVolume:    "2.4M",
		ActiveCreators: strconv.Itoa(len(creators)) + "K",
		TokenHolders:   "89.7K",
		Satisfaction:   "94%",
	})
}

func filterCreators(creators []database.Creator, filter string) []database.Creator {
	var keep func(database.Creator) bool
	switch filter {
	case filterRising:
		keep = func(c database.Creator) bool { return c.Ranking > 3 }
	case filterHighValue:
		keep = func(c database.Creator) bool { return c.TotalVolume.GreaterThan(highValueVolume) }
	case filterVip:
		keep = func(c database.Creator) bool { return c.Ranking <= 5 }
	default:
		return creators
	}

	out := make([]database.Creator, 0, len(creators))
	for _, c := range creators {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CreatorHubApp) getCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := s.db.GetAllCreators()
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, filterCreators(creators, r.URL.Query().Get("filter")))
}

func (s *CreatorHubApp) getTopCreators(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultTopLimit
	}

	creators, err := s.db.GetTopCreators(limit)
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, creators)
}

func (s *CreatorHubApp) getCreator(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r, "id")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	creator, err := s.db.GetCreator(id)
	if err != nil {
		s.writeError(w, lookupError(err, "creator"))
		return
	}

	s.writeJson(w, http.StatusOK, creator)
}

func (s *CreatorHubApp) getCreatorPartnerships(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r, "id")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	if _, err := s.db.GetCreator(id); err != nil {
		s.writeError(w, lookupError(err, "creator"))
		return
	}

	partnerships, err := s.db.GetCreatorPartnerships(id)
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, partnerships)
}

func (s *CreatorHubApp) getChatRooms(w http.ResponseWriter, _ *http.Request) {
	rooms, err := s.db.GetChatRooms()
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	out := make([]types.ChatRoom, 0, len(rooms))
	for _, room := range rooms {
		r := types.ChatRoom{ChatRoom: room}
		creator, err := s.db.GetCreator(room.CreatorId)
		switch {
		case err == nil:
			r.Creator = &creator
		case !errors.Is(err, database.ErrNotFound):
			s.writeError(w, NewInternalServerError(err))
			return
		}
		out = append(out, r)
	}

	s.writeJson(w, http.StatusOK, out)
}

func (s *CreatorHubApp) getChatMessages(w http.ResponseWriter, r *http.Request) {
	roomId, err := pathId(r, "roomId")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	messages, err := s.db.GetChatMessages(roomId)
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	senders := make(map[int]*database.User)
	out := make([]types.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		sender, ok := senders[msg.SenderId]
		if !ok {
			u, err := s.db.GetUser(msg.SenderId)
			switch {
			case err == nil:
				sender = &u
			case !errors.Is(err, database.ErrNotFound):
				s.writeError(w, NewInternalServerError(err))
				return
			}
			senders[msg.SenderId] = sender
		}

		out = append(out, types.ChatMessage{ChatMessage: msg, Sender: sender})
	}

	s.writeJson(w, http.StatusOK, out)
}

func (s *CreatorHubApp) getWallet(w http.ResponseWriter, _ *http.Request) {
	wallet, err := s.db.GetUserWallet(s.demoUserId)
	if err != nil {
		s.writeError(w, lookupError(err, "wallet"))
		return
	}

	s.writeJson(w, http.StatusOK, wallet)
}

var (
	holdingChanges = []string{"+8.2", "+12.1"}
	holdingTokens  = decimal.RequireFromString("15.2")
	tokensStep     = decimal.RequireFromString("6.5")
	holdingValue   = decimal.NewFromInt(4560)
	valueStep      = decimal.NewFromInt(1950)
)

// buildPortfolio derives the demo holdings from the two best ranked creators.
func buildPortfolio(creators []database.Creator, tokens []database.Token) types.Portfolio {
	holdings := make([]types.Holding, 0, len(holdingChanges))
	for i, c := range creators[:min(len(creators), len(holdingChanges))] {
		step := decimal.NewFromInt(int64(i))
		holdings = append(holdings, types.Holding{
			Creator: c,
			Tokens:  holdingTokens.Sub(tokensStep.Mul(step)).StringFixed(1),
			Value:   holdingValue.Sub(valueStep.Mul(step)).String(),
			Change:  holdingChanges[i],
		})
	}

	if tokens == nil {
		tokens = []database.Token{}
	}

	return types.Portfolio{
		TotalValue: "12847",
		DayChange:  "+18.3",
		KeysOwned:  23,
		Holdings:   holdings,
		Tokens:     tokens,
	}
}

func (s *CreatorHubApp) getPortfolio(w http.ResponseWriter, _ *http.Request) {
	tokens, err := s.db.GetUserTokens(s.demoUserId)
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	creators, err := s.db.GetAllCreators()
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, buildPortfolio(creators, tokens))
}

func (s *CreatorHubApp) getEvents(w http.ResponseWriter, _ *http.Request) {
	events, err := s.db.GetAllEvents()
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, events)
}

func (s *CreatorHubApp) getEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r, "id")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	event, err := s.db.GetEvent(id)
	if err != nil {
		s.writeError(w, lookupError(err, "event"))
		return
	}

	s.writeJson(w, http.StatusOK, event)
}

func (s *CreatorHubApp) getEventReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r, "id")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	if _, err := s.db.GetEvent(id); err != nil {
		s.writeError(w, lookupError(err, "event"))
		return
	}

	reviews, err := s.db.GetEventReviews(id)
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusOK, reviews)
}

func (s *CreatorHubApp) createBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r, "id")
	if err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	var req types.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	if err := validation.Struct(req); err != nil {
		s.writeError(w, NewBadRequestError(err))
		return
	}

	if _, err := s.db.GetEvent(id); err != nil {
		s.writeError(w, lookupError(err, "event"))
		return
	}

	status := req.Status
	if status == "" {
		status = bookingPending
	}

	booking, err := s.db.CreateEventBooking(database.EventBooking{
		EventId: id,
		UserId:  s.demoUserId,
		Status:  status,
	})
	if err != nil {
		s.writeError(w, NewInternalServerError(err))
		return
	}

	s.writeJson(w, http.StatusCreated, booking)
}

func (s *CreatorHubApp) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	return slices.Contains(s.allowedOrigins, "*") || slices.Contains(s.allowedOrigins, origin)
}

func (s *CreatorHubApp) serveWs(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("error upgrading connection", zap.Error(err))
		return
	}

	client, err := server.NewClient(conn, s.cs, s.log)
	if err != nil {
		s.log.Error("create client", zap.Error(err))
		conn.Close()
		return
	}

	if err := s.cs.RegisterClient(client); err != nil {
		s.log.Warn("register client", zap.Error(err))
		conn.Close()
		return
	}

	go client.Write()
	go client.Read()
}

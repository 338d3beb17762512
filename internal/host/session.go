package host

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/zeusync/ballchaser/internal/bot"
	"github.com/zeusync/ballchaser/internal/core/chat"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/render"
	"github.com/zeusync/ballchaser/internal/core/world"
)

// Params identify the car a connection drives.
type Params struct {
	Index int
	Team  world.Team
	Name  string
}

// ParseParams reads index, team and name from a connection query. Name
// falls back to defaultName.
func ParseParams(q url.Values, defaultName string) (Params, error) {
	index, err := strconv.Atoi(q.Get("index"))
	if err != nil || index < 0 {
		return Params{}, fmt.Errorf("%w: index %q", ErrInvalidQuery, q.Get("index"))
	}

	team := world.TeamBlue
	if raw := q.Get("team"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !world.Team(n).Valid() {
			return Params{}, fmt.Errorf("%w: team %q", ErrInvalidQuery, raw)
		}
		team = world.Team(n)
	}

	name := q.Get("name")
	if name == "" {
		name = defaultName
	}
	return Params{Index: index, Team: team, Name: name}, nil
}

// Session is the state of one connected car. Handle must be called from a
// single goroutine.
type Session struct {
	id     uuid.UUID
	topic  string
	params Params

	agent    *bot.Agent
	recorder *render.Recorder
	events   bus.EventBus
	chatSub  bus.Subscription
	chats    []chat.QuickChat
	logger   log.Log

	initialized  bool
	warnedUninit bool
	lastElapsed  float64
	hasElapsed   bool
}

// NewSession builds an agent for params. When overlay is set, debug draw
// calls are recorded and echoed in tick replies.
func NewSession(b bus.EventBus, params Params, opts bot.Options, overlay bool, logger log.Log) (*Session, error) {
	id := uuid.New()
	s := &Session{
		id:     id,
		topic:  "session." + id.String(),
		params: params,
		events: b,
		logger: logger.With(log.String("session", id.String())),
	}

	sub, err := b.SubscribeTopic(s.topic, chat.EventQuickChat, func(e bus.Event) error {
		if qc, ok := e.Data().(chat.QuickChat); ok {
			s.chats = append(s.chats, qc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe quick chat: %w", err)
	}
	s.chatSub = sub

	options := []bot.Option{
		bot.WithLogger(s.logger),
		bot.WithEvents(b, s.topic),
		bot.WithMessenger(chat.NewBusMessenger(b, s.topic, params.Name)),
	}
	if overlay {
		s.recorder = render.NewRecorder()
		options = append(options, bot.WithRenderer(s.recorder))
	}
	s.agent = bot.NewAgent(params.Name, params.Team, params.Index, opts, options...)

	return s, nil
}

func (s *Session) ID() string { return s.id.String() }

// Topic is the bus topic the session's agent publishes on.
func (s *Session) Topic() string { return s.topic }

func (s *Session) Agent() *bot.Agent { return s.agent }

// Handle answers one raw protocol message. Protocol errors become error
// replies; they never end the session.
func (s *Session) Handle(data []byte) Reply {
	req, err := DecodeRequest(data)
	if err != nil {
		s.logger.Warn("rejected message", log.Error(err))
		return errorReply(err)
	}

	switch req.Type {
	case TypeFieldInfo:
		s.agent.Initialize(*req.FieldInfo)
		s.initialized = true
		s.hasElapsed = false
		s.logger.Info("field info received", log.Int("boost_pads", len(req.FieldInfo.BoostPads)))
		return Reply{Type: TypeReady, Session: s.ID()}
	default:
		return s.tick(req.Packet)
	}
}

func (s *Session) tick(snap *world.Snapshot) Reply {
	if !s.initialized && !s.warnedUninit {
		s.logger.Warn("tick before field info, boost pads are unknown")
		s.warnedUninit = true
	}

	cmd := s.agent.Tick(snap, s.delta(snap.SecondsElapsed))
	reply := Reply{Type: TypeControls, Controls: &cmd}
	if s.recorder != nil {
		reply.Overlay = s.recorder.Flush()
	}
	if len(s.chats) > 0 {
		reply.Chat = s.chats
		s.chats = nil
	}
	return reply
}

// delta is the time since the previous tick; zero on the first tick and when
// the host clock goes backwards.
func (s *Session) delta(elapsed float64) float64 {
	dt := 0.0
	if s.hasElapsed && elapsed > s.lastElapsed {
		dt = elapsed - s.lastElapsed
	}
	s.lastElapsed, s.hasElapsed = elapsed, true
	return dt
}

// Close releases the session's bus topic.
func (s *Session) Close() {
	if s.chatSub != nil {
		_ = s.events.Unsubscribe(s.chatSub)
	}
	s.events.DropTopic(s.topic)
}

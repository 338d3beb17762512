package host

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballchaser/internal/bot"
	"github.com/zeusync/ballchaser/internal/core/chat"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/world"
)

func newTestSession(t *testing.T, opts bot.Options, overlay bool) (*Session, bus.EventBus) {
	t.Helper()
	b := bus.New()
	s, err := NewSession(b, Params{Index: 0, Team: world.TeamBlue, Name: "chaser"}, opts, overlay, log.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, b
}

func encode(t *testing.T, req Request) []byte {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return data
}

func tickRequest(t *testing.T, elapsed float64, car world.Physics) []byte {
	return encode(t, Request{Type: TypeTick, Packet: &world.Snapshot{
		SecondsElapsed: elapsed,
		Cars:           []world.CarState{{Name: "chaser", Physics: car}},
		Ball:           world.BallState{Physics: world.Physics{Velocity: geometry.Vec(0, 10, 0)}},
	}})
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams(url.Values{"index": {"2"}, "team": {"1"}, "name": {"orange"}}, "default")
	require.NoError(t, err)
	assert.Equal(t, Params{Index: 2, Team: world.TeamOrange, Name: "orange"}, p)

	p, err = ParseParams(url.Values{"index": {"0"}}, "default")
	require.NoError(t, err)
	assert.Equal(t, Params{Index: 0, Team: world.TeamBlue, Name: "default"}, p)

	for _, q := range []url.Values{
		{},
		{"index": {"-1"}},
		{"index": {"one"}},
		{"index": {"0"}, "team": {"2"}},
		{"index": {"0"}, "team": {"blue"}},
	} {
		_, err = ParseParams(q, "default")
		assert.ErrorIs(t, err, ErrInvalidQuery, q.Encode())
	}
}

func TestDecodeRequest(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"type":`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = DecodeRequest([]byte(`{"type":"dance"}`))
	assert.ErrorIs(t, err, ErrUnknownMessage)

	_, err = DecodeRequest([]byte(`{"type":"tick"}`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	_, err = DecodeRequest([]byte(`{"type":"field_info"}`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	req, err := DecodeRequest([]byte(`{"type":"field_info","field_info":{"boost_pads":[{"location":{"x":0,"y":-4240,"z":70},"is_full_boost":false}]}}`))
	require.NoError(t, err)
	require.Len(t, req.FieldInfo.BoostPads, 1)
	assert.Equal(t, geometry.Vec(0, -4240, 70), req.FieldInfo.BoostPads[0].Location)
}

func TestSession_FieldInfoThenTick(t *testing.T) {
	s, _ := newTestSession(t, bot.DefaultOptions(), false)

	reply := s.Handle(encode(t, Request{Type: TypeFieldInfo, FieldInfo: &world.FieldInfo{
		BoostPads: []world.BoostPad{{Location: geometry.Vec(3584, 0, 73), IsFullBoost: true}},
	}}))
	assert.Equal(t, Reply{Type: TypeReady, Session: s.ID()}, reply)
	assert.True(t, s.Agent().Tracker().Initialized())

	car := world.Physics{Location: geometry.Vec(0, -2000, 0), Rotation: geometry.Rotator{Yaw: 1.5707963267948966}}
	reply = s.Handle(tickRequest(t, 1, car))
	assert.Equal(t, TypeControls, reply.Type)
	require.NotNil(t, reply.Controls)
	assert.Equal(t, 1.0, reply.Controls.Throttle)
	assert.Nil(t, reply.Overlay)
	assert.Nil(t, reply.Chat)
}

func TestSession_TickBeforeFieldInfoIsServed(t *testing.T) {
	s, _ := newTestSession(t, bot.DefaultOptions(), false)

	reply := s.Handle(tickRequest(t, 0, world.Physics{}))
	assert.Equal(t, TypeControls, reply.Type)
	assert.NotNil(t, reply.Controls)
	assert.False(t, s.Agent().Tracker().Initialized())
}

func TestSession_ErrorsKeepSessionUsable(t *testing.T) {
	s, _ := newTestSession(t, bot.DefaultOptions(), false)

	reply := s.Handle([]byte("not json"))
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, ErrMalformedMessage.Error())

	reply = s.Handle([]byte(`{"type":"shutdown"}`))
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, ErrUnknownMessage.Error())

	reply = s.Handle(tickRequest(t, 0, world.Physics{}))
	assert.Equal(t, TypeControls, reply.Type)
}

func TestSession_Delta(t *testing.T) {
	s, _ := newTestSession(t, bot.DefaultOptions(), false)

	assert.Zero(t, s.delta(10))
	assert.InDelta(t, 0.5, s.delta(10.5), 1e-9)
	assert.Zero(t, s.delta(10.2), "clock went backwards")
	assert.InDelta(t, 0.1, s.delta(10.3), 1e-9)
}

func TestSession_OverlayEcho(t *testing.T) {
	s, _ := newTestSession(t, bot.DefaultOptions(), true)

	car := world.Physics{Location: geometry.Vec(0, -2000, 0)}
	reply := s.Handle(tickRequest(t, 0, car))
	assert.NotEmpty(t, reply.Overlay)

	// every reply carries only its own tick's primitives
	first := len(reply.Overlay)
	reply = s.Handle(tickRequest(t, 0.1, car))
	assert.Len(t, reply.Overlay, first)
}

func TestSession_QuickChatForwarded(t *testing.T) {
	opts := bot.DefaultOptions()
	opts.Flip.Enabled = true
	s, _ := newTestSession(t, opts, false)

	car := world.Physics{Location: geometry.Vec(0, -2000, 0), Velocity: geometry.Vec(0, 775, 0)}
	reply := s.Handle(tickRequest(t, 0, car))
	require.NotNil(t, reply.Controls)
	assert.True(t, reply.Controls.Jump)
	assert.Equal(t, []chat.QuickChat{{TeamOnly: false, Selection: chat.InformationIGotIt}}, reply.Chat)

	reply = s.Handle(tickRequest(t, 0.01, car))
	assert.Nil(t, reply.Chat, "chat is sent once")
}

func TestSession_CloseDropsTopic(t *testing.T) {
	b := bus.New()
	s, err := NewSession(b, Params{Name: "chaser"}, bot.DefaultOptions(), false, log.NewNop())
	require.NoError(t, err)

	hasTopic := func() bool {
		for _, ti := range b.GetTopics() {
			if ti.Name == s.Topic() {
				return true
			}
		}
		return false
	}
	assert.True(t, hasTopic())
	s.Close()
	assert.False(t, hasTopic())
}

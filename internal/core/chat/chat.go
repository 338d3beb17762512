// Package chat sends the enumerated quick-chat notifications a car may emit.
package chat

import (
	"fmt"

	"github.com/zeusync/ballchaser/internal/core/events/bus"
)

// EventQuickChat is the bus event type carrying a QuickChat.
const EventQuickChat = "chat.quick_chat"

// Selection is one of the host's canned quick-chat messages.
type Selection int

const (
	InformationIGotIt Selection = iota
	InformationNeedBoost
	InformationTakeTheShot
	InformationDefending
	InformationGoForIt
	ComplimentsNiceShot
	ReactionsWhatASave
)

var selectionNames = map[Selection]string{
	InformationIGotIt:      "Information_IGotIt",
	InformationNeedBoost:   "Information_NeedBoost",
	InformationTakeTheShot: "Information_TakeTheShot",
	InformationDefending:   "Information_Defending",
	InformationGoForIt:     "Information_GoForIt",
	ComplimentsNiceShot:    "Compliments_NiceShot",
	ReactionsWhatASave:     "Reactions_WhatASave",
}

func (s Selection) String() string {
	if name, ok := selectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

func (s Selection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// QuickChat is a single outgoing message.
type QuickChat struct {
	TeamOnly  bool      `json:"team_only"`
	Selection Selection `json:"selection"`
}

// Messenger delivers quick chats. Sends are fire-and-forget from the
// agent's point of view.
type Messenger interface {
	SendQuickChat(teamOnly bool, selection Selection) error
}

// BusMessenger publishes quick chats on an event bus topic.
type BusMessenger struct {
	bus    bus.EventBus
	topic  string
	source string
}

var _ Messenger = (*BusMessenger)(nil)

func NewBusMessenger(b bus.EventBus, topic, source string) *BusMessenger {
	return &BusMessenger{bus: b, topic: topic, source: source}
}

func (m *BusMessenger) SendQuickChat(teamOnly bool, selection Selection) error {
	return m.bus.PublishToTopic(m.topic, bus.NewEvent(EventQuickChat, m.source, QuickChat{
		TeamOnly:  teamOnly,
		Selection: selection,
	}))
}

// Discard drops every message.
type Discard struct{}

func (Discard) SendQuickChat(bool, Selection) error { return nil }

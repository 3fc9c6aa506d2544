package net

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// Session is the joining side of a share: one websocket connection to
// the host's hub.
type Session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial connects to a host's share endpoint. addr is "host:port".
func Dial(addr string) (*Session, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing host %s: %w", addr, err)
	}
	return &Session{conn: conn}, nil
}

func (s *Session) Send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("sending to host: %w", err)
	}
	return nil
}

// Listen blocks reading frames until the connection drops, passing each
// one to onMessage.
func (s *Session) Listen(onMessage func(Message)) error {
	for {
		var msg Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("host connection lost: %w", err)
		}
		onMessage(msg)
	}
}

func (s *Session) Close() error {
	return s.conn.Close()
}

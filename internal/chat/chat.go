// Package chat is the client side of the live chat: a WebSocket connection
// authenticated with the session credential, feeding a message collection
// the chat view renders.
package chat

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/quillboard/quill/internal/api"
	"github.com/quillboard/quill/internal/domain"
	"github.com/quillboard/quill/internal/logger"
	"github.com/quillboard/quill/internal/session"
)

var ErrNotConnected = errors.New("chat: not connected")

type Client struct {
	wsURL   string
	session *session.Session

	mu        sync.Mutex
	conn      *websocket.Conn
	messages  []domain.ChatMessage
	err       error
	connected bool
	closing   bool
}

func New(wsURL string, sess *session.Session) *Client {
	return &Client{wsURL: wsURL, session: sess}
}

// Connect dials the chat endpoint with the current credential in the token
// query parameter and starts the receive loop. The server replays recent
// history on connect; those messages arrive through the same loop.
func (c *Client) Connect(ctx context.Context) error {
	u, err := url.Parse(c.wsURL)
	if err != nil {
		return fmt.Errorf("invalid chat URL: %w", err)
	}
	q := u.Query()
	q.Set("token", c.session.Token())
	u.RawQuery = q.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("chat handshake rejected with status %d: %w", resp.StatusCode, err)
		}
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.closing = false
	c.err = nil
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var msg domain.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			c.connected = false
			// a locally initiated Close surfaces as a closed-connection
			// read error, not a close frame
			if !c.closing && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.err = err
				logger.Log.Warn("chat connection dropped", "error", err)
			}
			c.mu.Unlock()
			return
		}

		c.mu.Lock()
		c.messages = append(c.messages, msg)
		c.mu.Unlock()
	}
}

// Send writes one message to the chat. The echo with the server-assigned id
// comes back through the receive loop like everyone else's messages.
func (c *Client) Send(content string, replyTo *int64) error {
	req := api.ChatMessageRequest{Content: content, ReplyToId: replyTo}
	if err := api.Validate(req); err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	connected := c.connected
	c.mu.Unlock()
	if !connected || conn == nil {
		return ErrNotConnected
	}
	return conn.WriteJSON(req)
}

// Messages returns a copy of everything received so far, oldest first.
func (c *Client) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close tears the connection down. Safe to call when never connected.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.closing = true
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return conn.Close()
}

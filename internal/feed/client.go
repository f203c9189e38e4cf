// Package feed maintains the persistent websocket subscription to the
// block-arrival stream.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blockpulse/blockpulse-backend/internal/clock"
	"github.com/blockpulse/blockpulse-backend/internal/fault"
	"github.com/blockpulse/blockpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const defaultReconnectDelay = 5 * time.Second

type (
	// Conn is the subset of a websocket connection the client uses.
	Conn interface {
		WriteJSON(v any) error
		ReadMessage() (messageType int, p []byte, err error)
		Close() error
	}

	// Dialer opens a Conn to the feed endpoint.
	Dialer interface {
		Dial(ctx context.Context, url string) (Conn, error)
	}

	// Metrics observes feed connection attempts and inbound frames.
	Metrics interface {
		ObserveConnect(err error)
		ObserveFrame(status string)
	}
)

// subscribeMessage is sent once after every successful connect.
type subscribeMessage struct {
	Op string `json:"op"`
}

// announcementFrame mirrors the feed's block event shape. Pointer fields let
// the parser tell a missing field from a zero value.
type announcementFrame struct {
	Op string `json:"op"`
	X  struct {
		Height *int64  `json:"height"`
		Hash   *string `json:"hash"`
	} `json:"x"`
}

// WebsocketDialer dials the feed with gorilla/websocket.
type WebsocketDialer struct{}

// Dial opens a websocket connection to the given url.
func (WebsocketDialer) Dial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Client owns the block subscription: it connects, subscribes, parses inbound
// frames into announcements, and reconnects after a fixed delay on any
// transport fault. Duplicate announcements are possible and left to the
// downstream idempotent upsert.
type Client struct {
	url     string
	dialer  Dialer
	logger  *zap.Logger
	metrics Metrics
	sleep   func(context.Context, time.Duration) error
	delay   time.Duration
	out     chan model.BlockAnnouncement
}

// NewClient builds a feed client for the given websocket url.
func NewClient(url string, dialer Dialer, metrics Metrics, logger *zap.Logger, reconnectDelay time.Duration) (*Client, error) {
	if url == "" {
		return nil, errors.New("feed url is required")
	}
	if metrics == nil {
		return nil, errors.New("feed metrics is required")
	}
	if dialer == nil {
		dialer = WebsocketDialer{}
	}
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}
	return &Client{
		url:     url,
		dialer:  dialer,
		logger:  logger,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		delay:   reconnectDelay,
		out:     make(chan model.BlockAnnouncement),
	}, nil
}

// Announcements returns the stream of parsed block announcements. The channel
// is closed when Run returns.
func (c *Client) Announcements() <-chan model.BlockAnnouncement {
	return c.out
}

// Run drives the connect/subscribe/read loop until the context is canceled.
// Transport faults never propagate: the client waits the fixed delay and
// connects again, without a retry cap.
func (c *Client) Run(ctx context.Context) error {
	defer close(c.out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.runConn(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("feed connection lost, reconnecting",
			zap.String("fault", fault.Kind(err)),
			zap.Duration("delay", c.delay),
			zap.Error(err))
		if sleepErr := c.sleep(ctx, c.delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (c *Client) runConn(ctx context.Context) error {
	conn, err := c.dialer.Dial(ctx, c.url)
	c.metrics.ObserveConnect(err)
	if err != nil {
		return &fault.TransportError{Err: err}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	if err := conn.WriteJSON(subscribeMessage{Op: "blocks_sub"}); err != nil {
		return &fault.TransportError{Err: err}
	}
	c.logger.Info("subscribed to block feed", zap.String("url", c.url))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, payload, err := conn.ReadMessage()
		if err != nil {
			// Covers clean closes, abnormal closes and resets without a
			// closing handshake alike.
			return &fault.TransportError{Err: err}
		}

		ann, ok := parseAnnouncement(payload)
		if !ok {
			c.metrics.ObserveFrame("skipped")
			continue
		}
		c.metrics.ObserveFrame("ok")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case c.out <- ann:
		}
	}
}

// parseAnnouncement reports ok=false for any frame that does not match the
// expected block event shape. Such frames are skipped, not treated as errors.
func parseAnnouncement(payload []byte) (model.BlockAnnouncement, bool) {
	var frame announcementFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return model.BlockAnnouncement{}, false
	}
	if frame.Op != "block" || frame.X.Height == nil || frame.X.Hash == nil {
		return model.BlockAnnouncement{}, false
	}
	return model.BlockAnnouncement{Height: *frame.X.Height, Hash: *frame.X.Hash}, true
}

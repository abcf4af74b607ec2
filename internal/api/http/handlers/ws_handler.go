package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/notify"
)

const subscriberBuffer = 16

var errSubscriberGone = errors.New("subscriber buffer full or closed")

// connSubscriber bridges a websocket connection to a notification topic.
// Send never blocks: messages go into a buffered channel that the write
// loop drains in order, so per-connection delivery stays FIFO while a slow
// peer only loses its own messages.
type connSubscriber struct {
	id   string
	out  chan notify.Message
	done chan struct{}
	once sync.Once
}

func newConnSubscriber() *connSubscriber {
	return &connSubscriber{
		id:   uuid.NewString(),
		out:  make(chan notify.Message, subscriberBuffer),
		done: make(chan struct{}),
	}
}

func (s *connSubscriber) ID() string { return s.id }

func (s *connSubscriber) Send(msg notify.Message) error {
	select {
	case <-s.done:
		return errSubscriberGone
	case s.out <- msg:
		return nil
	default:
		return errSubscriberGone
	}
}

func (s *connSubscriber) close() {
	s.once.Do(func() { close(s.done) })
}

// WSHandler serves live notification streams over websockets and tracks the
// active-user count for the dashboard.
type WSHandler struct {
	broadcaster *notify.Broadcaster
	logger      *zap.Logger
	active      atomic.Int64
}

// NewWSHandler constructs handler.
func NewWSHandler(broadcaster *notify.Broadcaster, logger *zap.Logger) *WSHandler {
	return &WSHandler{broadcaster: broadcaster, logger: logger}
}

// Upgrade gates the route to websocket upgrade requests.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.NewError(http.StatusUpgradeRequired, "websocket upgrade required")
}

// Stream handles GET /ws/:topic. The connection is subscribed to the named
// topic until the peer disconnects.
func (h *WSHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		topicName := conn.Params("topic")
		if !validTopic(topicName) {
			_ = conn.WriteJSON(fiber.Map{"error": "unknown topic: " + topicName})
			_ = conn.Close()
			return
		}

		sub := newConnSubscriber()
		topic := h.broadcaster.Topic(topicName)
		topic.Subscribe(sub)
		h.trackConnect()

		defer func() {
			topic.Unsubscribe(sub.ID())
			sub.close()
			h.trackDisconnect()
		}()

		go h.writeLoop(conn, sub)

		// Read loop only watches for disconnect; inbound frames are ignored.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

// ActiveUsers handles GET /ws/active-users/count.
func (h *WSHandler) ActiveUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"active_users": h.active.Load()}})
}

func (h *WSHandler) writeLoop(conn *websocket.Conn, sub *connSubscriber) {
	for {
		select {
		case <-sub.done:
			return
		case msg := <-sub.out:
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("websocket write failed",
					zap.String("subscriber_id", sub.ID()),
					zap.Error(err))
				sub.close()
				return
			}
		}
	}
}

func (h *WSHandler) trackConnect() {
	count := h.active.Add(1)
	h.publishActiveCount(count)
}

func (h *WSHandler) trackDisconnect() {
	count := h.active.Add(-1)
	h.publishActiveCount(count)
}

func (h *WSHandler) publishActiveCount(count int64) {
	h.broadcaster.Publish(notify.TopicActiveUsers, notify.Message{
		Message: fmt.Sprintf("Active users: %d", count),
		Type:    notify.TypeInfo,
	})
}

func validTopic(name string) bool {
	switch name {
	case notify.TopicAuth, notify.TopicInventory, notify.TopicActiveUsers:
		return true
	}
	return false
}

package feed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// TopicEvents carries GameStateChanged messages
const TopicEvents = "/topic/events"

const (
	connectTimeout = 10 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 4 << 20
)

// ErrBroker is returned when the broker answers with an ERROR frame
var ErrBroker = errors.New("stomp broker error")

// Client subscribes to the game server's event topic and feeds a Sink.
// It does not reconnect; Run returns when the socket closes.
type Client struct {
	Endpoint string
	Sink     Sink
	Log      logrus.FieldLogger
	Dialer   *websocket.Dialer

	topics  mapset.Set[string]
	writeMu sync.Mutex
}

// NewClient creates a client subscribed to the events topic
func NewClient(endpoint string, sink Sink, log logrus.FieldLogger) *Client {
	topics := mapset.New[string]()
	topics.Put(TopicEvents)
	return &Client{
		Endpoint: endpoint,
		Sink:     sink,
		Log:      log,
		Dialer:   websocket.DefaultDialer,
		topics:   topics,
	}
}

// Run connects, subscribes and applies events until ctx is done or the
// connection drops. Connection failures are also recorded on the sink.
func (c *Client) Run(ctx context.Context) error {
	err := c.run(ctx)
	if err != nil && ctx.Err() == nil {
		c.Sink.SetMapError(err)
		c.Sink.SetStateError(err)
	}
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (c *Client) run(ctx context.Context) error {
	logger := c.Log
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("endpoint", c.Endpoint)

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, _, err := c.Dialer.DialContext(dialCtx, c.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("websocket error: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection")
		}
	}()
	conn.SetReadLimit(maxMessageSize)

	// unblock ReadMessage when the caller gives up
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.write(conn, NewFrame(CommandDisconnect))
			_ = conn.Close()
		case <-done:
		}
	}()

	if err := c.handshake(conn); err != nil {
		return err
	}
	log.Info("Connected to game server")

	subscriptions := make(map[string]string)
	var subscribeErr error
	c.topics.Each(func(topic string) {
		if subscribeErr != nil {
			return
		}
		id := uuid.NewString()
		subscriptions[id] = topic
		subscribeErr = c.write(conn, NewFrame(CommandSubscribe, "id", id, "destination", topic, "ack", "auto"))
		log.WithFields(logrus.Fields{"topic": topic, "subscription": id}).Debug("Subscribed")
	})
	if subscribeErr != nil {
		return fmt.Errorf("subscribing: %w", subscribeErr)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("Game server closed the connection")
				return nil
			}
			return fmt.Errorf("websocket error: %w", err)
		}

		frame, err := ParseFrame(data)
		if err != nil {
			log.WithError(err).Warn("Dropping unreadable frame")
			continue
		}
		if frame == nil {
			continue
		}

		switch frame.Command {
		case CommandMessage:
			topic, ok := subscriptions[frame.Headers["subscription"]]
			if !ok {
				topic = frame.Headers["destination"]
			}
			if !c.topics.Has(topic) {
				continue
			}
			c.handleMessage(log.WithField("topic", topic), frame.Body)
		case CommandError:
			return fmt.Errorf("%w: %s", ErrBroker, frame.Headers["message"])
		}
	}
}

func (c *Client) handshake(conn *websocket.Conn) error {
	host := "/"
	if u, err := url.Parse(c.Endpoint); err == nil && u.Host != "" {
		host = u.Hostname()
	}

	connect := NewFrame(CommandConnect, "accept-version", "1.2,1.1,1.0", "host", host, "heart-beat", "0,0")
	if err := c.write(conn, connect); err != nil {
		return fmt.Errorf("sending CONNECT: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(connectTimeout)); err != nil {
		return fmt.Errorf("setting read deadline: %w", err)
	}
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("waiting for CONNECTED: %w", err)
		}
		frame, err := ParseFrame(data)
		if err != nil {
			return err
		}
		if frame == nil {
			continue
		}
		switch frame.Command {
		case CommandConnected:
			return nil
		case CommandError:
			return fmt.Errorf("%w: %s", ErrBroker, frame.Headers["message"])
		default:
			return fmt.Errorf("%w: expected CONNECTED, got %s", ErrMalformedFrame, frame.Command)
		}
	}
}

func (c *Client) handleMessage(log logrus.FieldLogger, body []byte) {
	ev, err := DecodeEvent(body)
	if err != nil {
		log.WithError(err).Warn("Dropping unreadable event")
		return
	}
	if err := Apply(ev, c.Sink); err != nil {
		log.WithError(err).WithField("reason", ev.Reason).Warn("Dropping invalid event")
		return
	}
	log.WithField("reason", ev.Reason).Debug("Applied event")
}

func (c *Client) write(conn *websocket.Conn, f Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, f.Encode())
}

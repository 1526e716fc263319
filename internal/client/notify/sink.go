// Package notify forwards notifications received on the push channel to an
// outside sink: a line-oriented log file or a RabbitMQ queue. Delivery is
// best effort; a failing sink never blocks the client.
package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

type Sink interface {
	Publish(ctx context.Context, n models.Notification) error
	Close() error
}

const (
	KindNone = "none"
	KindLog  = "log"
	KindAMQP = "amqp"
)

// Options selects and configures a sink.
type Options struct {
	Kind    string
	LogPath string
	AMQPURL string
	Queue   string
}

func New(o Options) (Sink, error) {
	switch o.Kind {
	case "", KindNone:
		return Nop{}, nil
	case KindLog:
		return NewLogSink(o.LogPath)
	case KindAMQP:
		return NewAMQPSink(o.AMQPURL, o.Queue), nil
	default:
		return nil, fmt.Errorf("unknown notification sink %q", o.Kind)
	}
}

type Nop struct{}

func (Nop) Publish(context.Context, models.Notification) error { return nil }
func (Nop) Close() error                                       { return nil }

package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Engine.IO v4 packet types.
const (
	eioOpen    = '0'
	eioClose   = '1'
	eioPing    = '2'
	eioPong    = '3'
	eioMessage = '4'
	eioUpgrade = '5'
	eioNoop    = '6'
)

// Socket.IO v5 packet types, carried inside an Engine.IO message.
const (
	sioConnect      = '0'
	sioDisconnect   = '1'
	sioEvent        = '2'
	sioAck          = '3'
	sioConnectError = '4'
)

type packetKind int

const (
	kindUnknown packetKind = iota
	kindOpen
	kindClose
	kindPing
	kindPong
	kindNoop
	kindConnect
	kindConnectError
	kindDisconnect
	kindEvent
	kindAck
)

// handshake is the body of the Engine.IO open packet. Intervals are in
// milliseconds on the wire.
type handshake struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int      `json:"pingInterval"`
	PingTimeout  int      `json:"pingTimeout"`
	MaxPayload   int      `json:"maxPayload"`
}

// readWait is how long the client may go without hearing from the server
// before it considers the connection dead.
func (h handshake) readWait() time.Duration {
	return time.Duration(h.PingInterval+h.PingTimeout) * time.Millisecond
}

type packet struct {
	kind  packetKind
	event string
	data  json.RawMessage
	open  handshake
}

var errMalformed = errors.New("malformed packet")

func decodePacket(msg []byte) (packet, error) {
	if len(msg) == 0 {
		return packet{}, errMalformed
	}

	switch msg[0] {
	case eioOpen:
		var h handshake
		if err := json.Unmarshal(msg[1:], &h); err != nil {
			return packet{}, errors.Wrapf(errMalformed, "open packet: %v", err)
		}
		return packet{kind: kindOpen, open: h}, nil
	case eioClose:
		return packet{kind: kindClose}, nil
	case eioPing:
		return packet{kind: kindPing, data: json.RawMessage(msg[1:])}, nil
	case eioPong:
		return packet{kind: kindPong}, nil
	case eioNoop, eioUpgrade:
		return packet{kind: kindNoop}, nil
	case eioMessage:
		return decodeSocketPacket(msg[1:])
	default:
		return packet{}, errors.Wrapf(errMalformed, "unknown engine packet type %q", msg[0])
	}
}

func decodeSocketPacket(msg []byte) (packet, error) {
	if len(msg) == 0 {
		return packet{}, errMalformed
	}
	typ, rest := msg[0], msg[1:]

	// Optional namespace ("/admin,") and ack id digits precede the payload.
	if len(rest) > 0 && rest[0] == '/' {
		if i := bytes.IndexByte(rest, ','); i >= 0 {
			rest = rest[i+1:]
		} else {
			rest = nil
		}
	}
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		rest = rest[1:]
	}

	switch typ {
	case sioConnect:
		return packet{kind: kindConnect, data: json.RawMessage(rest)}, nil
	case sioDisconnect:
		return packet{kind: kindDisconnect}, nil
	case sioConnectError:
		return packet{kind: kindConnectError, data: json.RawMessage(rest)}, nil
	case sioAck:
		return packet{kind: kindAck, data: json.RawMessage(rest)}, nil
	case sioEvent:
		var args []json.RawMessage
		if err := json.Unmarshal(rest, &args); err != nil || len(args) == 0 {
			return packet{}, errors.Wrapf(errMalformed, "event payload %q", truncate(rest))
		}
		var name string
		if err := json.Unmarshal(args[0], &name); err != nil {
			return packet{}, errors.Wrapf(errMalformed, "event name %q", truncate(args[0]))
		}
		p := packet{kind: kindEvent, event: name}
		if len(args) > 1 {
			p.data = args[1]
		}
		return p, nil
	default:
		return packet{}, errors.Wrapf(errMalformed, "unknown socket packet type %q", typ)
	}
}

func encodeConnect(token string) ([]byte, error) {
	auth, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	return append([]byte{eioMessage, sioConnect}, auth...), nil
}

func encodeEvent(name string, payload any) ([]byte, error) {
	args := []any{name}
	if payload != nil {
		args = append(args, payload)
	}
	b, err := json.Marshal(args)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s event", name)
	}
	return append([]byte{eioMessage, sioEvent}, b...), nil
}

var (
	pongPacket       = []byte{eioPong}
	disconnectPacket = []byte{eioMessage, sioDisconnect}
)

// connectErrorMessage extracts the reason from a connect-error payload,
// which is either {"message": "..."} or a bare string.
func connectErrorMessage(data json.RawMessage) string {
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s != "" {
		return s
	}
	return fmt.Sprintf("connect error %s", truncate(data))
}

func truncate(b []byte) string {
	if len(b) > 128 {
		return string(b[:128]) + "..."
	}
	return string(b)
}

// Package obsws drives OBS Studio over its obs-websocket v5 control
// protocol and exposes it as a control.Studio.
package obsws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a connection to an obs-websocket server. Requests are
// synchronous and serialized; the bridge drives all host commands from a
// single worker, so there is never more than one request in flight.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to the obs-websocket server at url (ws://host:4455) and
// performs the Hello/Identify handshake. password may be empty when the
// server does not require authentication; a required password that is
// missing or wrong surfaces as an error here, not later.
func Dial(url, password string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("obsws: dial %s: %w", url, err)
	}

	c := &Client{conn: conn}
	if err := c.identify(password); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) identify(password string) error {
	var hello helloData
	if err := c.read(opHello, &hello); err != nil {
		return fmt.Errorf("obsws: hello: %w", err)
	}

	id := identifyData{RPCVersion: rpcVersion}
	if hello.Authentication != nil {
		if password == "" {
			return fmt.Errorf("obsws: server requires a password")
		}
		id.Authentication = authResponse(password, hello.Authentication)
	}
	if err := c.write(opIdentify, id); err != nil {
		return fmt.Errorf("obsws: identify: %w", err)
	}

	if err := c.read(opIdentified, nil); err != nil {
		return fmt.Errorf("obsws: identify: %w", err)
	}
	return nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// call performs one request/response exchange. resp may be nil when the
// response payload is of no interest.
func (c *Client) call(requestType string, req, resp interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	if err := c.write(opRequest, requestData{
		RequestType: requestType,
		RequestID:   id,
		RequestData: req,
	}); err != nil {
		return fmt.Errorf("obsws: %s: %w", requestType, err)
	}

	for {
		var env envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return fmt.Errorf("obsws: %s: %w", requestType, err)
		}
		// Events and stray frames are not subscribed to, but tolerate
		// them anyway.
		if env.Op != opRequestResponse {
			continue
		}

		var rd responseData
		if err := json.Unmarshal(env.D, &rd); err != nil {
			return fmt.Errorf("obsws: %s: %w", requestType, err)
		}
		if rd.RequestID != id {
			continue
		}

		if !rd.RequestStatus.Result {
			return fmt.Errorf("obsws: %s failed: %s (code %d)",
				requestType, rd.RequestStatus.Comment, rd.RequestStatus.Code)
		}
		if resp != nil && len(rd.ResponseData) > 0 {
			if err := json.Unmarshal(rd.ResponseData, resp); err != nil {
				return fmt.Errorf("obsws: %s: %w", requestType, err)
			}
		}
		return nil
	}
}

func (c *Client) write(op int, v interface{}) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(envelope{Op: op, D: d})
}

// read waits for the next frame with the wanted op code, skipping
// everything else.
func (c *Client) read(op int, v interface{}) error {
	for {
		var env envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return err
		}
		if env.Op != op {
			continue
		}
		if v == nil {
			return nil
		}
		return json.Unmarshal(env.D, v)
	}
}

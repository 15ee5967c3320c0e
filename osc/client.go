package osc

import (
	"net"
)

// Client enables you to send OSC messages to a listening peer.
type Client struct {
	conn *net.UDPConn
}

// Dial creates a new OSC Client with a connection to the specified peer.
func Dial(addr string) (*Client, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send sends an OSC message to the peer, one message per datagram.
func (c *Client) Send(msg *Message) error {
	data, err := msg.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = c.conn.Write(data)
	return err
}

// Close closes the connection to the peer.
func (c *Client) Close() error {
	return c.conn.Close()
}

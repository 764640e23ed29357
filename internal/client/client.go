// Package client implements the protocol's entire client side: one TCP
// connection per request, one line out, one response back. The desktop
// front-end and the command-line client both go through Do.
package client

import (
	"context"
	"io"
	"net"
)

// Do dials addr, sends the request line and returns the server's response.
// The write side is closed after sending so the server sees a complete
// request even when it arrives in multiple segments.
func Do(ctx context.Context, addr, request string) (string, error) {

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte(request)); err != nil {
		return "", err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return "", err
	}

	return string(resp), nil
}

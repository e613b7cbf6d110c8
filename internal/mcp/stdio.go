// ABOUTME: stdio transport: newline-delimited JSON-RPC over stdin/stdout
// ABOUTME: Used when the server runs as a subprocess of an MCP client

package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
)

// maxStdioLineSize bounds a single JSON-RPC message on the stdio transport.
const maxStdioLineSize = 4 << 20

// RunStdio serves MCP over stdin/stdout until the input closes or the
// context is cancelled. Responses are written one per line; logging must go
// to stderr, never stdout, or it corrupts the protocol stream.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.serveStdio(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("stdio transport ready", "tools", s.router.Len())

	// The whole stream is one session: a single conn carries the handshake.
	conn := s.newConn()
	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Warn("closing stdio conn", "error", err)
		}
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStdioLineSize)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			if err := enc.Encode(newError(nil, JSONRPCParseError, "invalid JSON")); err != nil {
				return err
			}
			continue
		}

		resp := conn.handle(ctx, req)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

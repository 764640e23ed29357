// Package tcp implements the line-oriented request/response protocol: a
// dispatcher mapping verbs to handlers, and an acceptor serving one request
// per connection.
//
// A request is a single line of whitespace-separated tokens, VERB first.
// Tokens cannot contain whitespace; there is no quoting or escaping. This is
// a known wire-format limitation the desktop clients share.
package tcp

import (
	"context"
	"strings"

	"github.com/edtechlab/coursehub/internal/logging"
	"github.com/edtechlab/coursehub/internal/server/services"
)

const (
	respInvalidRequest   = "Invalid request!"
	respMalformedRequest = "Error: malformed request"
	respInternalError    = "Error: internal error"
)

type handlerFunc func(ctx context.Context, args []string) string

type command struct {
	argc int
	run  handlerFunc
}

// Dispatcher parses an inbound request line and routes it to the matching
// verb handler. Arity is validated before any handler runs, so a short
// request answers with a malformed-request error instead of faulting.
type Dispatcher struct {
	commands map[string]command
	logger   logging.Logger
}

func NewDispatcher(us *services.UserService, cs *services.CatalogService, l logging.Logger) *Dispatcher {

	logger := l.With("module", "dispatcher")
	h := &handlers{users: us, catalog: cs, logger: logger}

	return &Dispatcher{
		logger: logger,
		commands: map[string]command{
			"REGISTER":               {argc: 3, run: h.register},
			"LOGIN":                  {argc: 2, run: h.login},
			"GET_COURSES":            {argc: 0, run: h.getCourses},
			"GET_RESOURCES":          {argc: 1, run: h.getResources},
			"UPLOAD_RESOURCE":        {argc: 3, run: h.uploadResource},
			"SUBSCRIBE":              {argc: 2, run: h.subscribe},
			"GET_SUBSCRIBED_COURSES": {argc: 1, run: h.getSubscribedCourses},
			"GET_NEW_RESOURCES":      {argc: 2, run: h.getNewResources},
		},
	}
}

// Dispatch processes one request line and returns the response text.
// Unknown verbs get the generic invalid-request answer; a known verb with
// too few arguments gets a malformed-request error. Extra tokens after the
// expected arguments are ignored, for clients that append trailing fields.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) string {

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return respInvalidRequest
	}

	cmd, ok := d.commands[parts[0]]
	if !ok {
		d.logger.Warn(ctx, "unknown verb", "verb", parts[0])
		return respInvalidRequest
	}

	args := parts[1:]
	if len(args) < cmd.argc {
		d.logger.Warn(ctx, "short request", "verb", parts[0], "got", len(args), "want", cmd.argc)
		return respMalformedRequest
	}

	return cmd.run(ctx, args[:cmd.argc])
}

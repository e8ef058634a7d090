package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestHandlerWithAttrsKeepsSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("s1"))
		logger.With("component", "env").InfoContext(ctx, "with attrs")
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.Contains(line, "with attrs") {
				continue
			}
			if !strings.Contains(line, "component=env") {
				t.Fatalf("got %v", line)
			}
			if !strings.Contains(line, SpanAttr+"=s1") {
				t.Fatalf("got %v", line)
			}
			return
		}
		t.Fatalf("got %v", buf.String())
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"io"

	"mesmer-studio/mesmer/pkg/upstream"
)

// fakeUpstream is a test double for UpstreamClient. It records the last
// payload and serves canned responses.
type fakeUpstream struct {
	models     json.RawMessage
	completion json.RawMessage
	stream     io.ReadCloser
	err        error

	lastPayload *upstream.ChatPayload
}

func (f *fakeUpstream) ListModels(ctx context.Context) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.models, nil
}

func (f *fakeUpstream) CreateChatCompletion(ctx context.Context, payload *upstream.ChatPayload) (json.RawMessage, error) {
	f.lastPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeUpstream) StreamChatCompletion(ctx context.Context, payload *upstream.ChatPayload) (io.ReadCloser, error) {
	// Mirror the real client: the stream flag is set on the wire payload.
	streamed := *payload
	streamed.Stream = true
	f.lastPayload = &streamed
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

// chunkReader yields one predefined chunk per Read call, mimicking an
// upstream SSE stream arriving in discrete chunks.
type chunkReader struct {
	chunks [][]byte
	next   int
	closed bool
}

func newChunkReader(chunks ...string) *chunkReader {
	cr := &chunkReader{}
	for _, c := range chunks {
		cr.chunks = append(cr.chunks, []byte(c))
	}
	return cr
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.next >= len(c.chunks) {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[c.next])
	c.next++
	return n, nil
}

func (c *chunkReader) Close() error {
	c.closed = true
	return nil
}

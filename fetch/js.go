//go:build js && wasm

package fetch

import (
	"context"
	"errors"
	"io"
	"sync"
	"syscall/js"
)

var fn js.Value

func init() {
	fn = js.Global().Call("eval", `
		async (url, write, fail) => {
			try {
				const resp = await fetch(url);
				if (!resp.ok) {
					fail("unexpected status " + resp.status);
					return;
				}

				for await (const chunk of resp.body) {
					write(chunk);
				}

				write(null);
			} catch (err) {
				fail(String(err));
			}
		}
	`)
}

// chunkQueue hands chunks from the javascript callbacks, which must never
// block, to the goroutine feeding the pipe.
type chunkQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	chunks [][]byte
	err    error
	closed bool
}

func (q *chunkQueue) push(chunk []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.chunks = append(q.chunks, chunk)
	q.cond.Signal()
}

func (q *chunkQueue) finish(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.err = err
	q.cond.Signal()
}

func (q *chunkQueue) next() ([]byte, error, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.chunks) == 0 && !q.closed {
		q.cond.Wait()
	}

	if len(q.chunks) > 0 {
		chunk := q.chunks[0]
		q.chunks = q.chunks[1:]
		return chunk, nil, true
	}

	return nil, q.err, false
}

func openURL(_ context.Context, url string) (io.ReadCloser, error) {
	read, write := io.Pipe()

	queue := &chunkQueue{}
	queue.cond = sync.NewCond(&queue.mu)

	receive := js.FuncOf(func(this js.Value, args []js.Value) any {
		chunk := args[0]
		if chunk.IsNull() {
			queue.finish(nil)
			return nil
		}

		buf := make([]byte, chunk.Get("length").Int())
		js.CopyBytesToGo(buf, chunk)

		queue.push(buf)
		return nil
	})

	fail := js.FuncOf(func(this js.Value, args []js.Value) any {
		queue.finish(errors.New("fetch " + url + ": " + args[0].String()))
		return nil
	})

	go fn.Invoke(url, receive, fail)

	go func() {
		defer receive.Release()
		defer fail.Release()

		// the callbacks stay alive until javascript is done with them
		var discard bool

		for {
			chunk, err, ok := queue.next()
			if !ok {
				_ = write.CloseWithError(err)
				return
			}

			if discard {
				continue
			}

			if _, err := write.Write(chunk); err != nil {
				// reader was closed, drop the rest
				discard = true
			}
		}
	}()

	return read, nil
}

package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/x/input"
	"github.com/muesli/cancelreader"
	"github.com/rs/zerolog"
)

// Input is a non-blocking key source over a terminal byte stream. A
// background goroutine reads and decodes the stream; Next never waits for it.
type Input struct {
	r    *input.Reader
	keys chan Key
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	err error
}

// NewInput wraps r in an input event reader. termType is the value of
// $TERM and may be empty. Call Start to begin reading.
func NewInput(r io.Reader, termType string, log zerolog.Logger) (*Input, error) {
	rd, err := input.NewReader(r, termType, 0)
	if err != nil {
		return nil, fmt.Errorf("create input reader: %w", err)
	}
	l := log.With().Str("component", "input").Logger()
	rd.SetLogger(&l)

	return &Input{
		r:    rd,
		keys: make(chan Key, 64),
		done: make(chan struct{}),
	}, nil
}

// Start launches the reader goroutine.
func (in *Input) Start() {
	go in.readLoop()
}

func (in *Input) readLoop() {
	defer close(in.keys)
	for {
		select {
		case <-in.done:
			return
		default:
		}

		evs, err := in.r.ReadEvents()
		for _, ev := range evs {
			k, ok := KeyFromEvent(ev)
			if !ok {
				continue
			}
			select {
			case in.keys <- k:
			case <-in.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) && !errors.Is(err, io.EOF) {
				in.mu.Lock()
				in.err = err
				in.mu.Unlock()
			}
			return
		}
	}
}

// Next returns the oldest pending key without blocking.
func (in *Input) Next() (Key, bool) {
	select {
	case k, ok := <-in.keys:
		return k, ok
	default:
		return Key{}, false
	}
}

// Err returns the read error that stopped the reader, if any.
func (in *Input) Err() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.err
}

// Close stops the reader goroutine and releases the reader. It is safe to
// call more than once.
func (in *Input) Close() error {
	var err error
	in.once.Do(func() {
		close(in.done)
		in.r.Cancel()
		err = in.r.Close()
	})
	return err
}

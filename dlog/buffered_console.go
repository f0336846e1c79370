package dlog

import (
	"bufio"
	"flag"
	"io"
	"os"
	"sync"
	"time"
)

// console buffers log output up to size bytes and, when interval is set,
// flushes at least that often.  With size <= 0 writes pass straight through,
// which is also the behavior until flags are parsed.
type console struct {
	mu       sync.Mutex
	base     io.Writer
	size     int
	interval time.Duration

	buf  *bufio.Writer
	stop chan struct{}
	done chan struct{}
}

// Log output goes to stderr so it never interleaves with the report on
// stdout.
var bufferedConsole = &console{base: os.Stderr}

func init() {
	flag.IntVar(&bufferedConsole.size, "dlog.console-buffer-size", 0,
		"Set the size for the console log buffer.")
	flag.DurationVar(&bufferedConsole.interval, "dlog.console-buffer-max-flush-interval",
		0,
		"Set the maximum time between console flushes if console-buffer-size is non-zero. If the buffer size is exceeded, the console may flush more often than this interval.")
}

func (c *console) Write(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf == nil {
		if c.size <= 0 {
			return c.base.Write(b)
		}
		c.buf = bufio.NewWriterSize(c.base, c.size)
		if c.interval > 0 {
			c.stop = make(chan struct{})
			c.done = make(chan struct{})
			go c.flushLoop(c.interval, c.stop, c.done)
		}
	}
	return c.buf.Write(b)
}

func (c *console) flushLoop(
	interval time.Duration,
	stop <-chan struct{},
	done chan<- struct{}) {

	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = c.Flush()
		case <-stop:
			return
		}
	}
}

func (c *console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf == nil {
		return nil
	}
	return c.buf.Flush()
}

// Close stops the flush loop and writes out the buffer.  Later writes start
// a fresh buffer.
func (c *console) Close() error {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	// The loop calls Flush, so it must be stopped without holding mu.
	if stop != nil {
		close(stop)
		<-done
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf == nil {
		return nil
	}
	err := c.buf.Flush()
	c.buf = nil
	return err
}

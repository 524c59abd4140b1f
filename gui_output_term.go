//go:build !headless

// gui_output_term.go - Terminal-backed Output/Key (§11)
//
// Grounded on terminal_host.go: raw stdin via golang.org/x/term, a
// background goroutine polling with syscall.Read in non-blocking mode, and
// the same CR->LF / DEL->BS translations. Output has no terminal hardware
// equivalent to a pixel blit, so BlockTransfer copies each transferred
// rectangle into a full-frame buffer and re-renders that whole frame as a
// grid of ANSI truecolor half-block characters — coarse, but a faithful
// rendering of the same BGRA buffer the hosted backend uses.

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TermOutput renders the back buffer to the controlling terminal using
// truecolor half-block escape sequences, two source rows per character row.
type TermOutput struct {
	width, height int
	buf           []byte // BGRA, one full frame
	mu            sync.Mutex
}

func NewTermOutput(width, height int) *TermOutput {
	return &TermOutput{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*BytesPerPixel),
	}
}

func (t *TermOutput) GetInfo() DisplayInfo {
	return DisplayInfo{HorizontalResolution: t.width, VerticalResolution: t.height}
}

func (t *TermOutput) BlockTransfer(src []byte, srcX, srcY, dstX, dstY, width, height, srcStrideBytes int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	dstStride := t.width * BytesPerPixel
	rowBytes := width * BytesPerPixel
	for row := 0; row < height; row++ {
		srcOff := (srcY+row)*srcStrideBytes + srcX*BytesPerPixel
		dstOff := (dstY+row)*dstStride + dstX*BytesPerPixel
		if srcOff < 0 || srcOff+rowBytes > len(src) || dstOff < 0 || dstOff+rowBytes > len(t.buf) {
			return newGuiError(Unsupported, "block transfer out of bounds", nil)
		}
		copy(t.buf[dstOff:dstOff+rowBytes], src[srcOff:srcOff+rowBytes])
	}

	t.render()
	return nil
}

// render paints the whole buffer using the Unicode upper-half-block
// character with independent foreground (top pixel) and background (bottom
// pixel) truecolor, halving vertical terminal cell usage.
func (t *TermOutput) render() {
	var b strings.Builder
	b.WriteString("\x1b[H")

	stride := t.width * BytesPerPixel
	for y := 0; y < t.height; y += 2 {
		for x := 0; x < t.width; x++ {
			top := t.pixelAt(x, y)
			var bottom [4]byte
			if y+1 < t.height {
				bottom = t.pixelAt(x, y+1)
			} else {
				bottom = top
			}
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top[2], top[1], top[0],
				bottom[2], bottom[1], bottom[0])
		}
		b.WriteString("\x1b[0m\r\n")
	}
	_ = stride
	fmt.Fprint(os.Stdout, b.String())
}

func (t *TermOutput) pixelAt(x, y int) [4]byte {
	off := y*t.width*BytesPerPixel + x*BytesPerPixel
	return [4]byte{t.buf[off], t.buf[off+1], t.buf[off+2], t.buf[off+3]}
}

func (t *TermOutput) Close() error {
	fmt.Fprint(os.Stdout, "\x1b[0m\x1b[2J\x1b[H")
	return nil
}

// TermKey reads raw stdin bytes in a background goroutine and surfaces them
// as InputKey values, exactly the raw-mode + non-blocking read pattern
// terminal_host.go's TerminalHost.Start uses.
type TermKey struct {
	fd           int
	oldTermState *term.State
	nonblockSet  bool

	mu      sync.Mutex
	pending []InputKey

	stopCh chan struct{}
	done   chan struct{}
	stopOnce sync.Once
}

func NewTermKey() (*TermKey, error) {
	k := &TermKey{
		fd:     int(os.Stdin.Fd()),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return nil, newGuiError(Unsupported, "failed to set raw terminal mode", err)
	}
	k.oldTermState = oldState

	if err := syscall.SetNonblock(k.fd, true); err != nil {
		_ = term.Restore(k.fd, k.oldTermState)
		return nil, newGuiError(Unsupported, "failed to set non-blocking stdin", err)
	}
	k.nonblockSet = true

	go k.pollLoop()
	return k, nil
}

func (k *TermKey) pollLoop() {
	defer close(k.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		n, err := syscall.Read(k.fd, buf)
		if n > 0 {
			b := buf[0]
			if b == '\r' {
				b = '\n'
			}
			if b == 0x7F {
				b = 0x08
			}
			k.mu.Lock()
			k.pending = append(k.pending, InputKey{Rune: rune(b), Scancode: uint16(b)})
			k.mu.Unlock()
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

func (k *TermKey) Read() (InputKey, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.pending) == 0 {
		return InputKey{}, false
	}
	next := k.pending[0]
	k.pending = k.pending[1:]
	return next, true
}

func (k *TermKey) Reset() {
	k.mu.Lock()
	k.pending = nil
	k.mu.Unlock()
}

func (k *TermKey) Close() error {
	k.stopOnce.Do(func() { close(k.stopCh) })
	<-k.done
	if k.nonblockSet {
		_ = syscall.SetNonblock(k.fd, false)
	}
	if k.oldTermState != nil {
		_ = term.Restore(k.fd, k.oldTermState)
	}
	return nil
}

//go:build !headless

// gui_output_ebiten.go - Ebiten-backed Output/Pointer/Key (§11)
//
// Grounded on video_backend_ebiten.go's EbitenOutput: a frame buffer guarded
// by a mutex, an ebiten.Game implementation (Update/Draw/Layout) run on its
// own goroutine, and the same windowed-size/title setup calls.

package main

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenOutput composites the back buffer into an ebiten window. It
// implements ebiten.Game itself, exactly as EbitenOutput does in the
// teacher.
type EbitenOutput struct {
	mu          sync.Mutex
	width       int
	height      int
	frameBuffer []byte
	window      *ebiten.Image
	started     chan struct{}
	startOnce   sync.Once
}

// NewEbitenOutput constructs an Output backed by an ebiten window of the
// given resolution. ebiten.RunGame blocks its calling goroutine, so it is
// launched in the background; the constructor waits for the first Draw
// call before returning, matching the teacher's own readiness handshake.
func NewEbitenOutput(width, height int) (*EbitenOutput, error) {
	eo := &EbitenOutput{
		width:       width,
		height:      height,
		frameBuffer: make([]byte, width*height*BytesPerPixel),
		started:     make(chan struct{}),
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("GUI Compositor")
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("gui: ebiten run error: %v\n", err)
		}
	}()

	<-eo.started
	return eo, nil
}

func (eo *EbitenOutput) GetInfo() DisplayInfo {
	return DisplayInfo{HorizontalResolution: eo.width, VerticalResolution: eo.height}
}

// BlockTransfer copies a BGRA rectangle into the window's frame buffer.
// dstX/dstY are used as the write target; srcX/srcY select the matching
// rectangle out of src using srcStrideBytes.
func (eo *EbitenOutput) BlockTransfer(src []byte, srcX, srcY, dstX, dstY, width, height, srcStrideBytes int) error {
	eo.mu.Lock()
	defer eo.mu.Unlock()

	dstStride := eo.width * BytesPerPixel
	rowBytes := width * BytesPerPixel

	for row := 0; row < height; row++ {
		srcOff := (srcY+row)*srcStrideBytes + srcX*BytesPerPixel
		dstOff := (dstY+row)*dstStride + dstX*BytesPerPixel
		if srcOff < 0 || srcOff+rowBytes > len(src) || dstOff < 0 || dstOff+rowBytes > len(eo.frameBuffer) {
			return newGuiError(Unsupported, "block transfer out of bounds", nil)
		}
		copy(eo.frameBuffer[dstOff:dstOff+rowBytes], src[srcOff:srcOff+rowBytes])
	}
	return nil
}

func (eo *EbitenOutput) Close() error {
	return nil
}

// Update satisfies ebiten.Game; the window itself generates no GUI events,
// it is purely a display surface.
func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.mu.Lock()
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}
	eo.window.WritePixels(bgraToRGBA(eo.frameBuffer))
	eo.mu.Unlock()

	screen.DrawImage(eo.window, nil)

	eo.startOnce.Do(func() { close(eo.started) })
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

// bgraToRGBA converts the engine's BGRA wire format to the RGBA WritePixels
// expects. A copy is unavoidable here: ebiten owns its image's memory
// layout and it differs from the compositor's.
func bgraToRGBA(bgra []byte) []byte {
	out := make([]byte, len(bgra))
	for i := 0; i+3 < len(bgra); i += 4 {
		out[i+0] = bgra[i+2]
		out[i+1] = bgra[i+1]
		out[i+2] = bgra[i+0]
		out[i+3] = bgra[i+3]
	}
	return out
}

// EbitenPointer polls ebiten's cursor position and left mouse button.
type EbitenPointer struct{}

func NewEbitenPointer() *EbitenPointer { return &EbitenPointer{} }

func (p *EbitenPointer) GetState() (PointerState, error) {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:           x,
		Y:           y,
		PrimaryDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}, nil
}

func (p *EbitenPointer) Reset()      {}
func (p *EbitenPointer) Close() error { return nil }

// EbitenKey surfaces ebiten's per-frame input characters and a small set of
// non-printable keys as InputKey values, one per Read call, matching the
// teacher's own printable/special-key split in handleKeyboardInput.
type EbitenKey struct {
	pending []InputKey
}

func NewEbitenKey() *EbitenKey { return &EbitenKey{} }

var ebitenSpecialKeys = []struct {
	key      ebiten.Key
	scancode uint16
}{
	{ebiten.KeyEnter, 0x1C},
	{ebiten.KeyBackspace, 0x0E},
	{ebiten.KeyTab, 0x0F},
	{ebiten.KeyEscape, 0x01},
	{ebiten.KeyArrowUp, 0x48},
	{ebiten.KeyArrowDown, 0x50},
	{ebiten.KeyArrowLeft, 0x4B},
	{ebiten.KeyArrowRight, 0x4D},
}

func (k *EbitenKey) Read() (InputKey, bool) {
	if len(k.pending) == 0 {
		k.refill()
	}
	if len(k.pending) == 0 {
		return InputKey{}, false
	}
	next := k.pending[0]
	k.pending = k.pending[1:]
	return next, true
}

func (k *EbitenKey) refill() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.pending = append(k.pending, InputKey{Rune: r})
	}
	for _, sk := range ebitenSpecialKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			k.pending = append(k.pending, InputKey{Scancode: sk.scancode})
		}
	}
}

func (k *EbitenKey) Reset()      { k.pending = nil }
func (k *EbitenKey) Close() error { return nil }

// Package display presents a framebuffer on a terminal surface.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block: the foreground color is the top pixel and the background
// color the bottom one. The framebuffer is resampled to the cell grid on
// every Update, so the surface follows terminal resizes.
package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"triangle-rasterizer/internal/postprocess"
	"triangle-rasterizer/internal/raster"
)

const halfBlock = '▀'

// Window is a terminal-backed presentation surface. It owns the screen and
// its event stream; it only reads the framebuffers it is given.
type Window struct {
	screen tcell.Screen
	title  string

	events chan tcell.Event
	quit   chan struct{}

	mu   sync.Mutex
	open bool
	once sync.Once
}

// NewWindow wraps an uninitialized screen. title is drawn on the top row.
func NewWindow(screen tcell.Screen, title string) *Window {
	return &Window{
		screen: screen,
		title:  title,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// Init enters the terminal's drawing mode and starts the event pump.
func (w *Window) Init() error {
	if err := w.screen.Init(); err != nil {
		return err
	}
	w.screen.HideCursor()
	w.screen.Clear()

	w.mu.Lock()
	w.open = true
	w.mu.Unlock()

	go w.poll()
	return nil
}

func (w *Window) poll() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.quit:
			return
		}
	}
}

// IsOpen reports whether the window is still accepting frames.
func (w *Window) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Pump handles all pending input without blocking. Escape, q and Ctrl-C
// close the window; a resize forces a full redraw.
func (w *Window) Pump() {
	for {
		select {
		case ev := <-w.events:
			w.handle(ev)
		default:
			return
		}
	}
}

func (w *Window) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			w.mu.Lock()
			w.open = false
			w.mu.Unlock()
		}
	case *tcell.EventResize:
		w.screen.Sync()
	}
}

// SetTitle replaces the text drawn on the top row from the next Update.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
}

// Size returns the pixel resolution the surface can show: one pixel per
// column and two per row.
func (w *Window) Size() (width, height int) {
	cols, rows := w.screen.Size()
	return cols, rows * 2
}

// Update presents fb, resampled to the current terminal size.
func (w *Window) Update(fb *raster.FrameBuffer) {
	pw, ph := w.Size()
	if pw == 0 || ph == 0 {
		return
	}
	// Shrinking filters so thin outlines survive; otherwise pixels are replicated
	img := fb.Image()
	if fb.Width > pw && fb.Height > ph {
		img = postprocess.Downsample(img, pw, ph)
	} else {
		img = postprocess.Fit(img, pw, ph)
	}

	for row := 0; row < ph/2; row++ {
		top := row * 2 * img.Stride
		bottom := top + img.Stride
		for x := 0; x < pw; x++ {
			i := x * 4
			fg := tcell.NewRGBColor(int32(img.Pix[top+i]), int32(img.Pix[top+i+1]), int32(img.Pix[top+i+2]))
			bg := tcell.NewRGBColor(int32(img.Pix[bottom+i]), int32(img.Pix[bottom+i+1]), int32(img.Pix[bottom+i+2]))
			w.screen.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	w.drawTitle()
	w.screen.Show()
}

func (w *Window) drawTitle() {
	w.mu.Lock()
	title := w.title
	w.mu.Unlock()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(title) {
		w.screen.SetContent(i, 0, r, nil, style)
	}
}

// Close restores the terminal. It is safe to call more than once.
func (w *Window) Close() {
	w.once.Do(func() {
		w.mu.Lock()
		w.open = false
		w.mu.Unlock()
		close(w.quit)
		w.screen.Fini()
	})
}

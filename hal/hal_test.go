package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLuma565(t *testing.T) {
	cases := []struct {
		p    uint16
		want uint8
	}{
		{0xFFFF, 0xFF},
		{0x0000, 0x00},
		{0xF800, 76},  // red
		{0x07E0, 149}, // green
		{0x001F, 29},  // blue
	}
	for _, tc := range cases {
		if got := luma565(tc.p); got != tc.want {
			t.Errorf("luma565(%#04x) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestFramebufferClearAndExpand(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	if fb.StrideBytes() != 6 || len(fb.Buffer()) != 12 {
		t.Fatalf("stride %d len %d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(0, 0xFF, 0)
	rgba := make([]byte, 3*2*4)
	fb.toRGBA(rgba)
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 0 || rgba[i+1] != 0xFF || rgba[i+2] != 0 || rgba[i+3] != 0xFF {
			t.Fatalf("pixel %d = % x, want opaque green", i/4, rgba[i:i+4])
		}
	}
	if err := fb.Present(); err != nil {
		t.Fatal(err)
	}
	if fb.presented() != 1 {
		t.Fatalf("presented = %d", fb.presented())
	}
}

func drainTicks(ch <-chan uint64) []uint64 {
	var got []uint64
	for len(ch) > 0 {
		got = append(got, <-ch)
	}
	return got
}

func TestHostTimeTicksFollowWallClock(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(100, 0)
	ht.now = func() time.Time { return now }

	ht.step(1)
	now = now.Add(2500 * time.Microsecond)
	ht.step(1)
	now = now.Add(600 * time.Microsecond)
	ht.step(1)

	// 1 on start, 2 after 2.5ms, and the 0.5ms remainder plus 0.6ms
	// makes one more.
	if diff := cmp.Diff(drainTicks(ht.Ticks()), []uint64{1, 3, 4}); diff != "" {
		t.Fatalf("ticks (-got +want)\n%s", diff)
	}
}

func TestHostTimeLongStallKeepsAllTime(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(100, 0)
	ht.now = func() time.Time { return now }

	ht.step(1)
	start := <-ht.Ticks()
	now = now.Add(2 * time.Second)
	ht.step(1)

	got := drainTicks(ht.Ticks())
	if len(got) != 1 || got[0]-start != 2000 {
		t.Fatalf("ticks after 2s stall = %v from %d, want one count 2000 later", got, start)
	}
}

func TestHostTimeFullQueueShedsOldest(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(100, 0)
	ht.now = func() time.Time { return now }

	ht.step(1)
	for i := 0; i < tickBuffer*3; i++ {
		now = now.Add(TickDuration)
		ht.step(1)
	}

	got := drainTicks(ht.Ticks())
	if len(got) != tickBuffer {
		t.Fatalf("queued %d counts, want %d", len(got), tickBuffer)
	}
	if last := got[len(got)-1]; last != uint64(1+tickBuffer*3) {
		t.Fatalf("latest count = %d, want %d", last, 1+tickBuffer*3)
	}
}

func TestKeyboardState(t *testing.T) {
	k := newHostKeyboard()
	k.set(KeyW, true)
	k.emit(KeyW, true)
	if !k.Pressed(KeyW) || k.Pressed(KeyS) || k.Pressed(keyCount+3) {
		t.Fatalf("unexpected held state")
	}
	if ev := <-k.Events(); ev != (KeyEvent{Code: KeyW, Press: true}) {
		t.Fatalf("event = %+v", ev)
	}
	for i := 0; i < 100; i++ {
		k.emit(KeyA, true) // full queue must not block
	}
}

func TestDumpASCII(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	// Left half white, right half black.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := y*fb.stride + x*2
			fb.buf[i], fb.buf[i+1] = 0xFF, 0xFF
		}
	}
	var out bytes.Buffer
	if err := DumpASCII(&out, fb, 4); err != nil {
		t.Fatal(err)
	}
	want := "@@  \n"
	if out.String() != want {
		t.Fatalf("dump = %q, want %q", out.String(), want)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	if got := TerminalWidth(&bytes.Buffer{}); got != 80 {
		t.Fatalf("TerminalWidth = %d, want 80", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var size [2]int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		size = [2]int{fb.Width(), fb.Height()}
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Width: 32, Height: 16})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 || size != [2]int{32, 16} {
		t.Fatalf("steps = %d size = %v", steps, size)
	}
}

func TestRunHeadlessStopAndFailure(t *testing.T) {
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return ErrStop }
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("ErrStop: got %v, want nil", err)
	}

	boom := errors.New("boom")
	err = RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestNewDefaults(t *testing.T) {
	h := New(0, -1)
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("size = %dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("format = %d", fb.Format())
	}
	if !strings.Contains(ErrNoWindow.Error(), "cgo") {
		t.Fatalf("ErrNoWindow = %q", ErrNoWindow)
	}
}

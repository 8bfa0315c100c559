// Package sfx manages loaded sound effects and multiplexes them onto a
// fixed pool of 64 hardware playback channels. Stereo effects occupy a
// numerically adjacent channel pair and are always stored as two
// independent mono buffers in device memory.
package sfx

import (
	"errors"
	"sync"
)

const ChannelCount = 64

const PanLeft = 0
const PanCenter = 128
const PanRight = 255

var ErrNoChannelAvailable = errors.New("sfx: no playback channel available")
var ErrInvalidHandle = errors.New("sfx: invalid sample handle")
var ErrUnsupportedFormat = errors.New("sfx: unsupported sample format")
var ErrInvalidData = errors.New("sfx: empty sample data")

// Handle names a loaded effect. The zero Handle is never valid, and a
// handle dies with its effect: reuse after Unload fails with
// ErrInvalidHandle even if the slot has been recycled.
type Handle struct {
	index      uint32
	generation uint32
}

type effect struct {
	left   BufferHandle
	right  BufferHandle
	length uint32
	rate   uint32
	format SampleFormat
	stereo bool
}

type slot struct {
	effect     effect
	generation uint32
	live       bool
}

// Engine owns the sample catalog and the channel in-use mask. The mask
// is the only state touched from interrupt-style contexts, so its
// critical sections stay short and never block; the catalog is only
// mutated by load and unload and is not guarded.
type Engine struct {
	mu       sync.Mutex
	inUse    uint64
	nextChan int

	samples  []slot
	freeList []uint32

	fs  FileSystem
	mem SoundMem
	out Transport
}

// NewEngine wires the engine to its collaborators. A nil fs falls back
// to the host filesystem.
func NewEngine(fs FileSystem, mem SoundMem, out Transport) *Engine {
	if fs == nil {
		fs = osFileSystem{}
	}

	return &Engine{fs: fs, mem: mem, out: out}
}

func (engine *Engine) insert(eff effect) Handle {
	if len(engine.freeList) > 0 {
		var index = engine.freeList[len(engine.freeList)-1]
		engine.freeList = engine.freeList[:len(engine.freeList)-1]

		engine.samples[index].effect = eff
		engine.samples[index].live = true

		return Handle{index + 1, engine.samples[index].generation}
	}

	engine.samples = append(engine.samples, slot{effect: eff, live: true})
	return Handle{uint32(len(engine.samples)), 0}
}

func (engine *Engine) lookup(handle Handle) (*effect, error) {
	if handle.index == 0 || handle.index > uint32(len(engine.samples)) {
		return nil, ErrInvalidHandle
	}

	var s = &engine.samples[handle.index-1]

	if !s.live || s.generation != handle.generation {
		return nil, ErrInvalidHandle
	}

	return &s.effect, nil
}

func (engine *Engine) releaseBuffers(eff *effect) {
	if eff.left != 0 {
		engine.mem.Free(eff.left)
	}

	if eff.stereo && eff.right != 0 {
		engine.mem.Free(eff.right)
	}
}

// Unload releases the effect's device buffers and retires its handle.
// The caller must make sure no playback command still references the
// buffers.
func (engine *Engine) Unload(handle Handle) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	engine.releaseBuffers(eff)

	var s = &engine.samples[handle.index-1]
	s.live = false
	s.generation = s.generation + 1
	engine.freeList = append(engine.freeList, handle.index-1)

	return nil
}

// UnloadAll destroys every live effect and frees its device memory.
func (engine *Engine) UnloadAll() {
	for index := range engine.samples {
		if !engine.samples[index].live {
			continue
		}

		engine.releaseBuffers(&engine.samples[index].effect)
		engine.samples[index].live = false
		engine.samples[index].generation = engine.samples[index].generation + 1
		engine.freeList = append(engine.freeList, uint32(index))
	}
}

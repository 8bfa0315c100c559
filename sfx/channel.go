package sfx

// ChannelAlloc claims the lowest free channel, or reports false when all
// 64 are taken. The mask update is one short critical section.
func (engine *Engine) ChannelAlloc() (int, bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	for chn := 0; chn < ChannelCount; chn++ {
		var bit = uint64(1) << uint(chn)

		if engine.inUse&bit == 0 {
			engine.inUse |= bit
			return chn, true
		}
	}

	return -1, false
}

// ChannelFree releases a channel claimed with ChannelAlloc.
func (engine *Engine) ChannelFree(chn int) {
	engine.mu.Lock()
	engine.inUse &^= uint64(1) << uint(chn)
	engine.mu.Unlock()
}

// nextFree runs the rotating fire and forget cursor. advance is 1 for
// mono and 2 for stereo so the paired channel stays clear for the right
// side. The cursor does not claim bits in the mask; explicit allocation
// stays with ChannelAlloc.
func (engine *Engine) nextFree(advance int) (int, bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	var chn = engine.nextChan
	var moved = 0

	for engine.inUse&(uint64(1)<<uint(chn)) != 0 {
		chn = (chn + 1) % ChannelCount

		if chn == engine.nextChan {
			break
		}

		moved++
	}

	if moved > 0 && chn == engine.nextChan {
		return -1, false
	}

	engine.nextChan = (chn + advance) % ChannelCount

	return chn, true
}

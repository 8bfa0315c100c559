package sfx

// Offsets sent to the transport are 16 bit; anything larger saturates.
const maxChannelOffset = 65534

const defaultFrequency = 44100

func clampOffset(val uint32) uint32 {
	if val >= 65535 {
		return maxChannelOffset
	}

	return val
}

// dispatchStart issues the start command, doubling it for stereo: the
// left buffer plays hard left on the primary channel and the right
// buffer hard right on the paired channel, bracketed so both land in the
// same dispatch batch.
func (engine *Engine) dispatchStart(cmd ChannelCommand, eff *effect, pan int) {
	if !eff.stereo {
		cmd.Pan = pan
		engine.out.Send(cmd)
		return
	}

	cmd.Pan = PanLeft
	engine.out.PauseDelivery()
	engine.out.Send(cmd)

	cmd.Channel = cmd.Channel + 1
	cmd.Base = uint32(eff.right)
	cmd.Pan = PanRight
	engine.out.Send(cmd)
	engine.out.ResumeDelivery()
}

func (engine *Engine) startChannel(chn int, eff *effect, vol int, pan int) {
	var size = clampOffset(eff.length)

	var cmd = ChannelCommand{
		Channel:   chn,
		Op:        OpStart,
		Base:      uint32(eff.left),
		Format:    eff.format,
		Length:    size,
		LoopEnd:   size,
		Frequency: eff.rate,
		Volume:    vol,
	}

	engine.dispatchStart(cmd, eff, pan)
}

// Play is fire and forget: it picks the next channel from the rotating
// cursor and starts the effect there. The chosen channel is returned so
// the caller can stop or retune the sound later.
func (engine *Engine) Play(handle Handle, vol int, pan int) (int, error) {
	eff, err := engine.lookup(handle)

	if err != nil {
		return -1, err
	}

	var advance = 1

	if eff.stereo {
		advance = 2
	}

	chn, ok := engine.nextFree(advance)

	if !ok {
		return -1, ErrNoChannelAvailable
	}

	engine.startChannel(chn, eff, vol, pan)

	return chn, nil
}

// PlayOn starts the effect on an explicit channel, usually one claimed
// with ChannelAlloc.
func (engine *Engine) PlayOn(chn int, handle Handle, vol int, pan int) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	engine.startChannel(chn, eff, vol, pan)

	return nil
}

// PlayBoundedOn starts the effect with explicit start, end and loop
// region sample offsets. ADPCM offsets scale by 4 to address packed
// samples; everything saturates at the transport's 16 bit ceiling.
func (engine *Engine) PlayBoundedOn(chn int, handle Handle, start uint32, end uint32, loop bool, loopStart uint32, loopEnd uint32, freq uint32, vol int, pan int) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	var base = uint32(eff.left) + start

	if eff.format == FormatADPCM {
		end *= 4
		loopStart *= 4
		loopEnd *= 4
	}

	var cmd = ChannelCommand{
		Channel:   chn,
		Op:        OpStart,
		Base:      base,
		Format:    eff.format,
		Length:    clampOffset(end),
		Loop:      loop,
		LoopStart: clampOffset(loopStart),
		LoopEnd:   clampOffset(loopEnd),
		Frequency: freq,
		Volume:    vol,
	}

	engine.dispatchStart(cmd, eff, pan)

	return nil
}

// UpdateVolume retunes a playing channel, mirroring the update onto the
// paired channel for stereo effects.
func (engine *Engine) UpdateVolume(chn int, handle Handle, vol int) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	var cmd = ChannelCommand{Channel: chn, Op: OpUpdateVolume, Volume: vol}
	engine.out.Send(cmd)

	if eff.stereo {
		cmd.Channel = chn + 1
		engine.out.Send(cmd)
	}

	return nil
}

// UpdateFrequency retunes playback rate, mirrored like UpdateVolume.
func (engine *Engine) UpdateFrequency(chn int, handle Handle, freq uint32) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	var cmd = ChannelCommand{Channel: chn, Op: OpUpdateFrequency, Frequency: freq}
	engine.out.Send(cmd)

	if eff.stereo {
		cmd.Channel = chn + 1
		engine.out.Send(cmd)
	}

	return nil
}

// UpdatePan moves a mono effect in the stereo field. For stereo effects
// the pair is re-pinned hard left and hard right as a bracketed batch.
func (engine *Engine) UpdatePan(chn int, handle Handle, pan int) error {
	eff, err := engine.lookup(handle)

	if err != nil {
		return err
	}

	var cmd = ChannelCommand{Channel: chn, Op: OpUpdatePan, Pan: pan}

	if !eff.stereo {
		engine.out.Send(cmd)
		return nil
	}

	cmd.Pan = PanLeft
	engine.out.PauseDelivery()
	engine.out.Send(cmd)

	cmd.Channel = chn + 1
	cmd.Pan = PanRight
	engine.out.Send(cmd)
	engine.out.ResumeDelivery()

	return nil
}

// Stop silences one channel with a fully zeroed stop command.
func (engine *Engine) Stop(chn int) {
	engine.out.Send(ChannelCommand{
		Channel:   chn,
		Op:        OpStop,
		Frequency: defaultFrequency,
		Pan:       PanCenter,
	})
}

// StopAll silences every channel currently claimed in the mask.
func (engine *Engine) StopAll() {
	engine.mu.Lock()
	var mask = engine.inUse
	engine.mu.Unlock()

	for chn := 0; chn < ChannelCount; chn++ {
		if mask&(uint64(1)<<uint(chn)) != 0 {
			engine.Stop(chn)
		}
	}
}

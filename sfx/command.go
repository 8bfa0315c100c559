package sfx

// SampleFormat uses the channel type codes the playback device expects.
type SampleFormat uint8

const (
	FormatPCM16 SampleFormat = 0
	FormatPCM8  SampleFormat = 1
	FormatADPCM SampleFormat = 2
)

type ChannelOp uint8

const (
	OpStart ChannelOp = iota
	OpStop
	OpUpdateVolume
	OpUpdateFrequency
	OpUpdatePan
)

// ChannelCommand is one directive for the playback transport. Offsets
// and lengths are in the device's own units (packed bytes for ADPCM).
type ChannelCommand struct {
	Channel   int
	Op        ChannelOp
	Base      uint32
	Format    SampleFormat
	Length    uint32
	Loop      bool
	LoopStart uint32
	LoopEnd   uint32
	Frequency uint32
	Volume    int
	Pan       int
}

// Transport delivers commands to the playback device. Commands sent
// between PauseDelivery and ResumeDelivery land in one dispatch batch
// and are observed as a unit.
type Transport interface {
	Send(cmd ChannelCommand)
	PauseDelivery()
	ResumeDelivery()
}

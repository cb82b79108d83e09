package config

const (
	KeyStyle         = "format.style"
	KeyUnit          = "format.unit"
	KeyDelimiter     = "format.delimiter"
	KeyCountdownTick = "countdown.tick"

	DefaultStyle         = "long"
	DefaultUnit          = "seconds"
	DefaultCountdownTick = "1s"
)

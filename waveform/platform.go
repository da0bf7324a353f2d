package waveform

// Platform selects the machine clock a Pulse's t-cycle length is measured
// against. ZX Spectrum tapes and Amstrad CPC (.cdt) tapes share the TZX wire
// format but run at different base clocks.
type Platform int

const (
	ZXSpectrum Platform = iota
	AmstradCPC
)

// baseClockHz is the Z80 clock all TZX pulse lengths are expressed against
// for the ZX Spectrum; the Amstrad CPC multiplier below scales from there.
const baseClockHz = 3_500_000

// tCycleSeconds returns the duration of one t-cycle on this platform.
func (p Platform) tCycleSeconds() float64 {
	switch p {
	case AmstradCPC:
		return (1.0 / baseClockHz) * (4.0 / 3.5)
	default:
		return 1.0 / baseClockHz
	}
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	switch p {
	case AmstradCPC:
		return "amstrad-cpc"
	default:
		return "zx-spectrum"
	}
}

// PlatformFromExtension infers the platform from a filename extension,
// defaulting to ZXSpectrum for anything else.
func PlatformFromExtension(ext string) Platform {
	if ext == ".cdt" {
		return AmstradCPC
	}
	return ZXSpectrum
}

// PlatformFromFlag parses the --platform CLI flag value.
func PlatformFromFlag(flag string) (Platform, bool) {
	switch flag {
	case "amstrad-cpc":
		return AmstradCPC, true
	case "zx-spectrum":
		return ZXSpectrum, true
	default:
		return ZXSpectrum, false
	}
}

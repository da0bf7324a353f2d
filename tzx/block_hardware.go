package tzx

import (
	"fmt"

	"retroio/storage"
)

// HardwareCategory is the first byte of a HardwareType entry: the general
// class of machine or peripheral being described.
type HardwareCategory uint8

const (
	HWComputer         HardwareCategory = 0x00
	HWExternalStorage  HardwareCategory = 0x01
	HWROMRAMAddOn      HardwareCategory = 0x02
	HWSoundDevice      HardwareCategory = 0x03
	HWJoystick         HardwareCategory = 0x04
	HWKeyboardOrMouse  HardwareCategory = 0x05
	HWLightGun         HardwareCategory = 0x06
	HWSoundDigitizer   HardwareCategory = 0x07
)

var hardwareCategoryNames = map[byte]HardwareCategory{
	0x00: HWComputer,
	0x01: HWExternalStorage,
	0x02: HWROMRAMAddOn,
	0x03: HWSoundDevice,
	0x04: HWJoystick,
	0x05: HWKeyboardOrMouse,
	0x06: HWLightGun,
	0x07: HWSoundDigitizer,
}

func (c HardwareCategory) String() string {
	switch c {
	case HWComputer:
		return "Computer"
	case HWExternalStorage:
		return "External storage"
	case HWROMRAMAddOn:
		return "ROM/RAM add-on"
	case HWSoundDevice:
		return "Sound device"
	case HWJoystick:
		return "Joystick"
	case HWKeyboardOrMouse:
		return "Keyboard/mouse"
	case HWLightGun:
		return "Light gun"
	case HWSoundDigitizer:
		return "Sound digitizer"
	default:
		return "Unknown"
	}
}

// decodeHardwareCategory is a pure lookup, so RecoveryEnum's rewind on
// failure never loses bytes: the category field is always exactly one byte
// regardless of whether it's recognised.
func decodeHardwareCategory(tag byte, r *storage.Reader) (HardwareCategory, bool) {
	cat, ok := hardwareCategoryNames[tag]
	return cat, ok
}

// computerSubtypeNames names a handful of well-known sub-type ids within
// the Computer category; ids outside this table (or in other categories)
// are reported numerically.
var computerSubtypeNames = map[byte]string{
	0x00: "ZX Spectrum 16k",
	0x01: "ZX Spectrum 48k/Plus",
	0x02: "ZX Spectrum 48k ISSUE 1",
	0x03: "ZX Spectrum 128k +(Sinclair)",
	0x04: "ZX Spectrum 128k +2 (grey case)",
	0x05: "ZX Spectrum 128k +2A/+3",
	0x06: "Timex Sinclair TC2048",
	0x07: "Timex Sinclair TS2068",
	0x08: "Pentagon 128",
	0x09: "Sam Coupe",
	0x0A: "Didaktik M",
	0x0B: "Didaktik Gama",
	0x0C: "ZX-81",
	0x0D: "ZX Spectrum 128k, Spanish version",
	0x0E: "ZX Spectrum, Arabic version",
	0x0F: "Microdigital TK90X",
	0x10: "Microdigital TK95",
	0x11: "Byte",
	0x12: "Elwro 800-3",
	0x13: "ZS Scorpion 256",
	0x14: "Amstrad CPC 464",
	0x15: "Amstrad CPC 664",
	0x16: "Amstrad CPC 6128",
	0x17: "Amstrad CPC 464+",
	0x18: "Amstrad CPC 6128+",
	0x19: "Jupiter ACE",
	0x1A: "Enterprise",
	0x1B: "Commodore 64",
	0x1C: "Commodore 128",
}

// hardwareSubtypeName resolves a sub-type id within the given category,
// falling back to a numeric label for ids the table doesn't name.
func hardwareSubtypeName(cat HardwareCategory, id byte) string {
	if cat == HWComputer {
		if name, ok := computerSubtypeNames[id]; ok {
			return name
		}
	}
	return fmt.Sprintf("id 0x%02X", id)
}

// HardwareTypeEntry describes one piece of hardware the tape is known to
// run on, or known not to.
type HardwareTypeEntry struct {
	Category    HardwareCategory
	RawCategory byte
	SubType     byte
	Info        uint8 // 0=runs, 1=uses special hardware, 2=runs but doesn't use, 3=doesn't run
}

func (e HardwareTypeEntry) infoLabel() string {
	switch e.Info {
	case 0:
		return "runs on this hardware"
	case 1:
		return "runs on and uses this hardware"
	case 2:
		return "runs on, but does not use this hardware"
	case 3:
		return "does not run on this hardware"
	default:
		return "unknown compatibility"
	}
}

// HardwareType (0x33): a list of hardware compatibility notes.
type HardwareType struct {
	metadataOnlyBlock
	Entries []HardwareTypeEntry
}

func (b *HardwareType) Kind() BlockKind { return KindHardwareType }

func (b *HardwareType) Read(r *storage.Reader) error {
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	b.Entries = make([]HardwareTypeEntry, n)
	for i := range b.Entries {
		rec, err := DecodeRecovery(r, decodeHardwareCategory)
		if err != nil {
			return err
		}
		subType, err := r.ReadByte()
		if err != nil {
			return err
		}
		info, err := r.ReadByte()
		if err != nil {
			return err
		}
		b.Entries[i] = HardwareTypeEntry{
			Category:    rec.Value,
			RawCategory: rec.Raw,
			SubType:     subType,
			Info:        info,
		}
	}
	return nil
}

func (b *HardwareType) Describe() string {
	return fmt.Sprintf("Hardware Type: %d entries", len(b.Entries))
}

func (b *HardwareType) Extended() []string {
	lines := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		label := e.Category.String()
		if label == "Unknown" {
			label = fmt.Sprintf("Unknown category (0x%02X)", e.RawCategory)
		}
		lines[i] = fmt.Sprintf("%s / %s: %s", label, hardwareSubtypeName(e.Category, e.SubType), e.infoLabel())
	}
	return lines
}

package eia608

// Basic character set. Mostly ASCII with the standard EIA-608
// substitutions for accented Latin characters and the solid block.
// 0x00 is listed as the empty string so padding halves of a pair
// render as nothing.
var baseChars = buildBaseChars()

func buildBaseChars() map[byte]string {
	m := map[byte]string{
		0x00: "",
		0x2A: "á", 0x5C: "é", 0x5E: "í", 0x5F: "ó", 0x60: "ú",
		0x7B: "ç", 0x7C: "÷", 0x7D: "Ñ", 0x7E: "ñ", 0x7F: "■",
	}
	// Everything else in 0x20..0x7F is plain ASCII.
	for b := byte(0x20); b <= 0x7F; b++ {
		if _, ok := m[b]; !ok {
			m[b] = string(rune(b))
		}
	}
	return m
}

// Two-byte special characters, keyed by the low byte. The high byte is
// 0x11 for CC1 and 0x19 for CC2.
var specialChars = map[byte]string{
	0x30: "®", 0x31: "°", 0x32: "½", 0x33: "¿", 0x34: "™", 0x35: "¢",
	0x36: "£", 0x37: "♪", 0x38: "à", 0x39: " ", 0x3A: "è", 0x3B: "â",
	0x3C: "ê", 0x3D: "î", 0x3E: "ô", 0x3F: "û",
}

// Control codes on high byte 0x14 (CC1) / 0x1C (CC2), except the tab
// offsets which live on 0x17 / 0x1F.
type controlDef struct {
	name string
	code ControlCode
}

var controlDefs = map[[2]byte]controlDef{
	{0x14, 0x20}: {"Resume Caption Loading", ResumeCaptionLoading},
	{0x14, 0x21}: {"Backspace", Backspace},
	{0x14, 0x22}: {"Reserved (Alarm Off)", AlarmOff},
	{0x14, 0x23}: {"Reserved (Alarm On)", AlarmOn},
	{0x14, 0x24}: {"Delete to End Of Row", DeleteToEndOfRow},
	{0x14, 0x25}: {"Roll-Up Captions-2 Rows", RollUp2},
	{0x14, 0x26}: {"Roll-Up Captions-3 Rows", RollUp3},
	{0x14, 0x27}: {"Roll-Up Captions-4 Rows", RollUp4},
	{0x14, 0x28}: {"Flash On", FlashOn},
	{0x14, 0x29}: {"Resume Direct Captioning", ResumeDirectCaptioning},
	{0x14, 0x2A}: {"Text Restart", TextRestart},
	{0x14, 0x2B}: {"Resume Text Display", ResumeTextDisplay},
	{0x14, 0x2C}: {"Erase Displayed Memory", EraseDisplayedMemory},
	{0x14, 0x2D}: {"Carriage Return", CarriageReturn},
	{0x14, 0x2E}: {"Erase Non-Displayed Memory", EraseNonDisplayedMemory},
	{0x14, 0x2F}: {"End of Caption (flip memory)", EndOfCaption},
	{0x17, 0x21}: {"Tab Offset 1", TabOffset1},
	{0x17, 0x22}: {"Tab Offset 2", TabOffset2},
	{0x17, 0x23}: {"Tab Offset 3", TabOffset3},
}

// cc2ControlHigh maps a CC1 control high byte to its CC2 counterpart.
func cc2ControlHigh(b byte) byte {
	if b == 0x14 {
		return 0x1C
	}
	return 0x1F
}

// Preamble address codes span 15 rows. Each row is addressed by a fixed
// high byte; the low byte selects color or indent plus underline. The
// row-to-high-byte mapping below is irregular by design of the standard
// (rows 11..15 break the cadence).
var cc1PreambleHigh = [15]byte{
	0x11, 0x11, 0x12, 0x12, 0x15, 0x15, 0x16, 0x16,
	0x17, 0x17, 0x10, 0x13, 0x13, 0x14, 0x14,
}

// rowUsesUpperCodes marks rows whose low byte lives in 0x60..0x7F
// instead of 0x40..0x5F.
var rowUsesUpperCodes = [15]bool{
	false, true, false, true, false, true, false, true,
	false, true, false, false, true, false, true,
}

// preambleStyle describes one of the 16 low-nibble preamble variants
// (8 colors/italics followed by 8 indents).
type preambleStyle struct {
	name   string
	color  Color
	indent int
	italic bool
}

var preambleStyles = [16]preambleStyle{
	{"Pre: White", White, -1, false},
	{"Pre: Green", Green, -1, false},
	{"Pre: Blue", Blue, -1, false},
	{"Pre: Cyan", Cyan, -1, false},
	{"Pre: Red", Red, -1, false},
	{"Pre: Yellow", Yellow, -1, false},
	{"Pre: Magenta", Magenta, -1, false},
	{"Pre: White Italics", White, -1, true},
	{"Pre: Indent 0", White, 0, false},
	{"Pre: Indent 4", White, 4, false},
	{"Pre: Indent 8", White, 8, false},
	{"Pre: Indent 12", White, 12, false},
	{"Pre: Indent 16", White, 16, false},
	{"Pre: Indent 20", White, 20, false},
	{"Pre: Indent 24", White, 24, false},
	{"Pre: Indent 28", White, 28, false},
}

// Mid-row codes on high byte 0x11 (CC1) / 0x19 (CC2), low byte
// 0x20..0x2F: seven colors plus italics, each with an underline
// variant.
type midRowDef struct {
	name   string
	color  Color
	italic bool
}

var midRowDefs = [8]midRowDef{
	{"Mid-row: White", White, false},
	{"Mid-row: Green", Green, false},
	{"Mid-row: Blue", Blue, false},
	{"Mid-row: Cyan", Cyan, false},
	{"Mid-row: Red", Red, false},
	{"Mid-row: Yellow", Yellow, false},
	{"Mid-row: Magenta", Magenta, false},
	{"Mid-row: Italics", NoColor, true},
}

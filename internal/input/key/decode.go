package key

const esc = 0x1b

// Decode splits one chunk of raw terminal input into key events.
// An escape byte that ends the chunk, or that starts an unknown sequence,
// is reported as KeyEscape.
func Decode(chunk []byte) []Event {
	var events []Event
	for i := 0; i < len(chunk); {
		ev, n := decodeOne(chunk[i:])
		i += n
		if ev.Key != KeyNone {
			events = append(events, ev)
		}
	}
	return events
}

// decodeOne decodes the event at the start of b and how many bytes it used.
func decodeOne(b []byte) (Event, int) {
	c := b[0]
	switch {
	case c == esc:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return SpecialEvent(KeyEnter), 1
	case c == '\t':
		return SpecialEvent(KeyTab), 1
	case c == 0x7f || c == 0x08:
		return SpecialEvent(KeyBackspace), 1
	case c >= 0x01 && c <= 0x1a:
		return CtrlEvent('a' + c - 1), 1
	case c < 0x20:
		return Event{}, 1
	default:
		return ByteEvent(c), 1
	}
}

// decodeEscape handles CSI ("ESC [") and SS3 ("ESC O") sequences.
func decodeEscape(b []byte) (Event, int) {
	if len(b) < 3 || (b[1] != '[' && b[1] != 'O') {
		return SpecialEvent(KeyEscape), 1
	}

	switch b[2] {
	case 'A':
		return SpecialEvent(KeyUp), 3
	case 'B':
		return SpecialEvent(KeyDown), 3
	case 'C':
		return SpecialEvent(KeyRight), 3
	case 'D':
		return SpecialEvent(KeyLeft), 3
	case 'H':
		return SpecialEvent(KeyHome), 3
	case 'F':
		return SpecialEvent(KeyEnd), 3
	}

	if b[1] == '[' && len(b) >= 4 && b[3] == '~' {
		switch b[2] {
		case '1', '7':
			return SpecialEvent(KeyHome), 4
		case '3':
			return SpecialEvent(KeyDelete), 4
		case '4', '8':
			return SpecialEvent(KeyEnd), 4
		case '5':
			return SpecialEvent(KeyPageUp), 4
		case '6':
			return SpecialEvent(KeyPageDown), 4
		}
	}

	return SpecialEvent(KeyEscape), 1
}

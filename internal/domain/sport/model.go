package sport

import "strings"

// Key is the stable identifier of a sport. It is never inferred from names.
type Key string

const (
	KeyFootball   Key = "football"
	KeyBasketball Key = "basketball"
)

// Sport is one of the fixed sports the catalog covers.
type Sport struct {
	ID   Key
	Name string
	Icon string
}

var (
	Football   = Sport{ID: KeyFootball, Name: "Football", Icon: "⚽"}
	Basketball = Sport{ID: KeyBasketball, Name: "Basketball", Icon: "🏀"}
)

// All returns the supported sports in display order.
func All() []Sport {
	return []Sport{Football, Basketball}
}

// ParseKey resolves a caller supplied sport name. Empty input is reported as not found.
func ParseKey(raw string) (Key, bool) {
	switch Key(strings.ToLower(strings.TrimSpace(raw))) {
	case KeyFootball:
		return KeyFootball, true
	case KeyBasketball:
		return KeyBasketball, true
	default:
		return "", false
	}
}

// ByKey returns the fixed record for key.
func ByKey(key Key) (Sport, bool) {
	switch key {
	case KeyFootball:
		return Football, true
	case KeyBasketball:
		return Basketball, true
	default:
		return Sport{}, false
	}
}

func (k Key) String() string {
	return string(k)
}

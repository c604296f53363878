// Package input defines the closed set of key tokens the game understands.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Key represents a keyboard key.
type Key int

// Letters occupy KeyA..KeyZ contiguously; ParseKey relies on that.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape

	keyCount
)

// ErrUnknownKey is returned for a token outside the supported key set.
var ErrUnknownKey = errors.New("unknown key")

var namedKeys = map[string]Key{
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"space":  KeySpace,
	"enter":  KeyEnter,
	"escape": KeyEscape,
}

// ParseKey converts a key token ("a".."z", "up", "down", "left", "right",
// "space", "enter", "escape") into a Key. Tokens are case-insensitive.
func ParseKey(name string) (Key, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'z' {
		return KeyA + Key(token[0]-'a'), nil
	}
	if k, ok := namedKeys[token]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// MustParseKey is ParseKey for tokens fixed at compile time.
func MustParseKey(name string) Key {
	k, err := ParseKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

// AllKeys returns every supported key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the token ParseKey accepts for k.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	for name, key := range namedKeys {
		if key == k {
			return name
		}
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// State reports whether a key is currently held.
type State interface {
	IsKeyPressed(key Key) bool
}

// Bindings maps game actions onto keys.
type Bindings struct {
	Jump  Key
	Left  Key
	Right Key
	Reset Key
	Start Key
	Skip  Key
	Menu  Key
	Debug Key
}

// DefaultBindings returns the arrow-key layout.
func DefaultBindings() Bindings {
	return Bindings{
		Jump:  KeyUp,
		Left:  KeyLeft,
		Right: KeyRight,
		Reset: KeyR,
		Start: KeySpace,
		Skip:  KeyEnter,
		Menu:  KeyEscape,
		Debug: KeyG,
	}
}

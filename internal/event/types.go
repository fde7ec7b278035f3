// internal/event/types.go
package event

const (
	PointerMove EventType = "PointerMove" // Курсор сдвинулся
	PointerDown EventType = "PointerDown" // Кнопка нажата
	PointerUp   EventType = "PointerUp"
	Click       EventType = "Click" // Нажатие и отпускание без сдвига
	KeyDown     EventType = "KeyDown"
	Resize      EventType = "Resize"
)

// Pointer is the Data of pointer events, in surface pixels.
type Pointer struct {
	X, Y   float64
	Button int
}

// Key is the Data of KeyDown, e.g. "Space", "F", "Escape".
type Key string

// Size is the Data of Resize.
type Size struct {
	Width, Height int
}

// PointerOf returns the pointer carried by e.
func PointerOf(e Event) (Pointer, bool) {
	p, ok := e.Data.(Pointer)
	return p, ok
}

// KeyOf returns the key carried by e.
func KeyOf(e Event) (Key, bool) {
	k, ok := e.Data.(Key)
	return k, ok
}

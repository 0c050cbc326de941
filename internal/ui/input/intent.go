package input

// Intent represents an abstract action decoded from a raw input event
type Intent interface {
	Type() string
}

// InsertChar inserts one character into the query at the cursor
type InsertChar struct {
	Rune rune
}

func (i InsertChar) Type() string { return "insert_char" }

// DeleteBack removes the character before the cursor
type DeleteBack struct{}

func (i DeleteBack) Type() string { return "delete_back" }

// MoveUp moves the highlight one row up
type MoveUp struct{}

func (i MoveUp) Type() string { return "move_up" }

// MoveDown moves the highlight one row down
type MoveDown struct{}

func (i MoveDown) Type() string { return "move_down" }

// Confirm accepts the highlighted entry
type Confirm struct{}

func (i Confirm) Type() string { return "confirm" }

// Cancel aborts the session
type Cancel struct{}

func (i Cancel) Type() string { return "cancel" }

// Resize carries a new terminal size; it only affects layout
type Resize struct {
	Width  int
	Height int
}

func (i Resize) Type() string { return "resize" }

// Ignore is produced for unrecognized events so the session never has to
// fail on unknown input
type Ignore struct{}

func (i Ignore) Type() string { return "ignore" }

package profile

// Type is a value exchanged between a handler and an item.
type Type interface {
	String() string
}

// State is a value describing the state of an item.
type State interface {
	Type
	isState()
}

// Command is a value sent to make an item or a handler change.
type Command interface {
	Type
	isCommand()
}

// StringType is a plain string. It can be both a state and a command.
type StringType string

func (s StringType) String() string { return string(s) }

func (StringType) isState() {}

func (StringType) isCommand() {}

// UnDefType holds the special states. They only exist as states.
type UnDefType string

const (
	// UNDEF means the state could not be determined.
	UNDEF UnDefType = "UNDEF"
	// NULL means the state was never set.
	NULL UnDefType = "NULL"
)

func (u UnDefType) String() string { return string(u) }

func (UnDefType) isState() {}

var (
	_ State   = StringType("")
	_ Command = StringType("")
	_ State   = UNDEF
)

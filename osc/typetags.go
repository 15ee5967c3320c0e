package osc

// TypeTag identifies the wire type of a single OSC argument. Only the
// three tags the control surface traffic actually uses are supported;
// anything else ends the argument scan for the packet it appears in.
type TypeTag byte

const (
	TypeFloat32 TypeTag = 'f'
	TypeInt32   TypeTag = 'i'
	TypeString  TypeTag = 's'
	TypeInvalid TypeTag = 0
)

// ToTypeTag returns the OSC TypeTag for the given argument.
// Returns TypeInvalid if the argument type is unsupported.
func ToTypeTag(arg interface{}) TypeTag {
	switch arg.(type) {
	case float32:
		return TypeFloat32
	case int32:
		return TypeInt32
	case string:
		return TypeString
	default:
		return TypeInvalid
	}
}

package revlog

// Kind is the kind of event a log row records.
type Kind int

const (
	// KindCreate is the first row of a key.
	KindCreate Kind = iota
	// KindUpdate replaces the value of a live key.
	KindUpdate
	// KindDelete is a tombstone.
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "Create"
	case KindUpdate:
		return "Update"
	case KindDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

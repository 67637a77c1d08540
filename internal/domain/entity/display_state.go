package entity

// StateKind estado transitorio de un listado en pantalla.
type StateKind int

const (
	StateLoading StateKind = iota
	StateEmpty
	StatePopulated
	StateError
)

func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// DisplayState determina qué muestra el renderer: Loading, Empty, Populated(collection) o Error(message).
type DisplayState struct {
	Kind       StateKind
	Collection Collection
	Message    string
}

func LoadingState() DisplayState { return DisplayState{Kind: StateLoading} }

func EmptyState() DisplayState { return DisplayState{Kind: StateEmpty} }

func ErrorState(message string) DisplayState {
	return DisplayState{Kind: StateError, Message: message}
}

// StateFor Populated si hay registros, Empty en otro caso.
func StateFor(c Collection) DisplayState {
	if len(c) == 0 {
		return EmptyState()
	}
	return DisplayState{Kind: StatePopulated, Collection: c}
}

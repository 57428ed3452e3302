package table

// Phase is the visual state of the table.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhasePopulated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// Decide picks the phase for the given inputs. Loading wins regardless of
// the row count.
func Decide(loading bool, rowCount int) Phase {
	switch {
	case loading:
		return PhaseLoading
	case rowCount == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

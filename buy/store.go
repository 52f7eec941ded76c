package buy

// StateStore is the single-slot persistence for the buy state snapshot.
// Load returns nil when no snapshot is stored. Save persists only the
// serializable subset of the state; transient fields come back reset.
type StateStore interface {
	Load() (*State, error)
	Save(state State) error
	Clear() error
}

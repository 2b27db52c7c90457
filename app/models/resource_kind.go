package models

// ResourceKind names the currency an account holds and a catalog entry
// charges in. Stored as a short string so the database rows stay readable.
type ResourceKind string

const (
	ResourceGold   ResourceKind = "gold"
	ResourceElixir ResourceKind = "elixir"
)

// Valid reports whether the kind is one of the known currencies.
func (k ResourceKind) Valid() bool {
	return k == ResourceGold || k == ResourceElixir
}

func (k ResourceKind) String() string {
	return string(k)
}

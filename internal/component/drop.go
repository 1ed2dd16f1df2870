// internal/component/drop.go
package component

// DropKind — вид подбираемого предмета.
type DropKind int

const (
	DropOrb DropKind = iota // сфера опыта, притягивается магнитом
	DropChest                // сундук: только физическое пересечение, магнит не действует
)

// Drop — предмет, оставшийся после смерти врага.
type Drop struct {
	X, Y   float64
	Radius float64
	Value  float64
	Kind   DropKind
	Dead   bool
}

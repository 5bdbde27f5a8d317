package domain

// Session carries the selection state of one caller: the chosen courier, the
// chosen service and the template last applied. It is owned by the
// orchestrating layer and passed explicitly into each pipeline call.
type Session struct {
	Courier  string
	Service  string
	Template string
}

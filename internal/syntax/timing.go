package syntax

// TimingControl is the interface for timing control nodes.
type TimingControl interface {
	Node
	aTimingControl()
}

// EventExpr is the interface for event expression nodes.
type EventExpr interface {
	Node
	aEventExpr()
}

// EdgeKind identifies the edge specifier on a signal event.
type EdgeKind int

const (
	EdgeNone EdgeKind = iota
	PosEdge
	NegEdge
	BothEdges
)

// DelayControl represents a delay control: #expr
type DelayControl struct {
	Position Pos
	Delay    Expr
}

// EventControl represents an event control naming a single signal: @name
type EventControl struct {
	Position  Pos
	EventName Expr
}

// EventControlWithExpr represents an event control with a full event
// expression: @(expr)
type EventControlWithExpr struct {
	Position Pos
	Expr     EventExpr
}

// SignalEventExpr represents a signal event with an optional edge:
// posedge clk, negedge rst, or a plain signal.
type SignalEventExpr struct {
	Position Pos
	Edge     EdgeKind
	Expr     Expr
}

// BinaryEventExpr represents two event expressions joined by "or" or ",".
type BinaryEventExpr struct {
	Position Pos
	Left     EventExpr
	Right    EventExpr
}

// ParenEventExpr represents a parenthesized event expression.
type ParenEventExpr struct {
	Position Pos
	Expr     EventExpr
}

func (n *DelayControl) Pos() Pos         { return n.Position }
func (n *EventControl) Pos() Pos         { return n.Position }
func (n *EventControlWithExpr) Pos() Pos { return n.Position }
func (n *SignalEventExpr) Pos() Pos      { return n.Position }
func (n *BinaryEventExpr) Pos() Pos      { return n.Position }
func (n *ParenEventExpr) Pos() Pos       { return n.Position }

func (*DelayControl) aNode()         {}
func (*EventControl) aNode()         {}
func (*EventControlWithExpr) aNode() {}
func (*SignalEventExpr) aNode()      {}
func (*BinaryEventExpr) aNode()      {}
func (*ParenEventExpr) aNode()       {}

func (*DelayControl) aTimingControl()         {}
func (*EventControl) aTimingControl()         {}
func (*EventControlWithExpr) aTimingControl() {}

func (*SignalEventExpr) aEventExpr() {}
func (*BinaryEventExpr) aEventExpr() {}
func (*ParenEventExpr) aEventExpr()  {}

package chart

import "time"

// Class groups elements that are cleared and redrawn together.
type Class string

const (
	ClassBar    Class = "bar"
	ClassValue  Class = "value"
	ClassMonth  Class = "month"
	ClassYear   Class = "year"
	ClassAxis   Class = "axis"
	ClassNoData Class = "nodata"
)

// Classes lists every class in paint order.
var Classes = []Class{ClassBar, ClassValue, ClassMonth, ClassYear, ClassAxis, ClassNoData}

// Kind is the shape of an element.
type Kind int

const (
	KindRect Kind = iota
	KindText
	KindAxis
)

// Attrs are the animatable attributes of an element.
type Attrs struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
}

// Transition moves an element from its Attrs to To.
// A zero Duration with a positive Delay makes the element appear after Delay.
type Transition struct {
	Delay    time.Duration
	Duration time.Duration
	To       Attrs
}

// Font describes how text is drawn.
type Font struct {
	Family string
	Size   float64
	Weight string
}

// Tick is one axis graduation; Pos is relative to the axis origin.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Axis is a vertical axis drawn at a translated origin.
type Axis struct {
	TranslateX float64
	TranslateY float64
	Length     float64
	Ticks      []Tick
}

// Element is one drawn shape or label.
type Element struct {
	Kind  Kind
	Class Class
	Attrs Attrs

	Text   string
	Anchor string
	Font   Font

	Transition *Transition
	Axis       *Axis
}

// Final returns the attributes once every transition has completed.
func (e Element) Final() Attrs {
	if e.Transition == nil {
		return e.Attrs
	}
	return e.Transition.To
}

// Surface is what the renderer draws on. Changes become visible on Commit.
type Surface interface {
	Remove(class Class)
	Append(el Element)
	Commit()
}

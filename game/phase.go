package game

import (
	"fmt"

	"voyager.com/craps/craps"
)

type PhaseKind int

const (
	PhaseComeOut PhaseKind = iota
	PhasePoint
)

func (k PhaseKind) String() string {
	if k == PhasePoint {
		return "point"
	}
	return "come-out"
}

// Phase is either the come-out or a point phase carrying its point number.
// The zero value is the come-out phase; a point phase can only be built
// through pointPhase, so the point is always one of the six box numbers.
type Phase struct {
	point int
}

func comeOutPhase() Phase {
	return Phase{}
}

func pointPhase(point int) Phase {
	if !craps.IsPointNumber(point) {
		panic(fmt.Sprintf("invalid point %d", point))
	}
	return Phase{point: point}
}

func (p Phase) Kind() PhaseKind {
	if p.point == 0 {
		return PhaseComeOut
	}
	return PhasePoint
}

func (p Phase) IsComeOut() bool {
	return p.point == 0
}

// Point returns the established point. ok is false during the come-out.
func (p Phase) Point() (point int, ok bool) {
	return p.point, p.point != 0
}

func (p Phase) String() string {
	if p.point == 0 {
		return PhaseComeOut.String()
	}
	return fmt.Sprintf("%s %d", PhasePoint, p.point)
}

func phaseFromSnapshot(kind string, point int) (Phase, error) {
	switch kind {
	case PhaseComeOut.String():
		if point != 0 {
			return Phase{}, fmt.Errorf("come-out phase cannot carry point %d", point)
		}
		return comeOutPhase(), nil
	case PhasePoint.String():
		if !craps.IsPointNumber(point) {
			return Phase{}, fmt.Errorf("invalid point %d", point)
		}
		return pointPhase(point), nil
	}
	return Phase{}, fmt.Errorf("unknown phase [%s]", kind)
}

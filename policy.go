package meshgen

// Policy clamps the parameters of a shape to safe values before it is drawn.
// It is applied the same way to every shape; the core never validates.
type Policy struct {
	Bounds Bounds
	Logger Logger
}

func NewPolicy(bounds Bounds, logger Logger) *Policy {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Policy{Bounds: bounds, Logger: logger}
}

// Apply clamps the parameters of g in place and returns the number of
// warnings emitted. Unknown generators are left alone.
func (p *Policy) Apply(g Generator) int {
	warnings := 0
	switch s := g.(type) {
	case *ConeRing:
		warnings += p.radii(&s.InnerRadius, &s.OuterRadius)
		warnings += p.angle(&s.Angle)
		warnings += p.sides(&s.Sides)
	case *HalfRing:
		warnings += p.radii(&s.InnerRadius, &s.OuterRadius)
		warnings += p.angle(&s.Angle)
		warnings += p.sides(&s.Sides)
	case *Ring:
		warnings += p.radii(&s.InnerRadius, &s.OuterRadius)
		warnings += p.angle(&s.Angle)
		warnings += p.sides(&s.Sides)
	case *LoftedCone:
		warnings += p.angle(&s.Angle)
		warnings += p.sides(&s.Sides)
	}
	return warnings
}

// radii keeps 0 <= inner <= outer. Pulling inner down to outer or outer up to
// inner is silent, negative radii warn.
func (p *Policy) radii(inner, outer *float32) int {
	warnings := 0
	if *inner > *outer {
		*inner = *outer
	}
	if *inner < 0 {
		*inner = 0
		p.Logger.Warnf("Inner radius cannot be less than 0!")
		warnings++
	}
	if *outer < 0 {
		*outer = 0
		p.Logger.Warnf("Outer radius cannot be less than 0!")
		warnings++
	}
	if *outer < *inner {
		*outer = *inner
	}
	return warnings
}

func (p *Policy) angle(angle *float32) int {
	b := p.Bounds
	if *angle >= b.MinAngle && *angle <= b.MaxAngle {
		return 0
	}
	if *angle < b.MinAngle {
		*angle = b.MinAngle
	} else {
		*angle = b.MaxAngle
	}
	p.Logger.Warnf("Angle cannot be less than %g or more than %g!", b.MinAngle, b.MaxAngle)
	return 1
}

func (p *Policy) sides(sides *int) int {
	b := p.Bounds
	switch {
	case *sides < b.MinSides:
		*sides = b.MinSides
		p.Logger.Warnf("Sides cannot be less than %d!", b.MinSides)
		return 1
	case *sides > b.MaxSides:
		*sides = b.MaxSides
		p.Logger.Warnf("Too many sides might cause performance issue! Disable restrictUnsafeValues to bypass this warning.")
		return 1
	}
	return 0
}

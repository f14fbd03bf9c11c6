package camera

// Motion is the set of movement inputs held during a tick.
type Motion struct {
	Up, Down      bool
	Left, Right   bool
	Forward, Back bool
	TurnLeft      bool
	TurnRight     bool
}

// FlyController moves a camera freely along world X/Y, along its look
// direction, and turns it about Y.
//
// It does not depend on any input system.
type FlyController struct {
	MoveSpeed    float32 // world units per second along X and Y
	ForwardSpeed float32 // world units per second along the look direction
	TurnSpeed    float32 // radians per second
}

func DefaultFlyController() FlyController {
	return FlyController{MoveSpeed: 28, ForwardSpeed: 18, TurnSpeed: 2}
}

// Apply returns s advanced by dt seconds of motion m.
func (c FlyController) Apply(s State, m Motion, dt float32) State {
	if dt <= 0 {
		return s
	}
	step := c.MoveSpeed * dt
	if m.Up {
		s.Position.Y += step
	}
	if m.Down {
		s.Position.Y -= step
	}
	if m.Left {
		s.Position.X -= step
	}
	if m.Right {
		s.Position.X += step
	}

	fwd := s.LookDir().Mul(c.ForwardSpeed * dt)
	if m.Forward {
		s.Position = s.Position.Add(fwd)
	}
	if m.Back {
		s.Position = s.Position.Sub(fwd)
	}

	if m.TurnLeft {
		s.Yaw += c.TurnSpeed * dt
	}
	if m.TurnRight {
		s.Yaw -= c.TurnSpeed * dt
	}
	return s
}

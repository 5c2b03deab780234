package floatinglabel

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
)

// SpringDuration is how long label pose changes take to settle.
const SpringDuration = 700 * time.Millisecond

// springStep is the simulation step used when sampling a spring.
const springStep = time.Second / 120

// SpringCurve samples sim over d into an easing curve for an
// [animation.AnimationController] with the same duration. sim should run from
// 0 to 1; the curve may overshoot 1 and is pinned to 1 at t=1.
func SpringCurve(sim *animation.SpringSimulation, d time.Duration) func(float64) float64 {
	n := max(int(d/springStep), 1)
	samples := make([]float64, n+1)
	samples[0] = sim.Position()
	for i := 1; i <= n; i++ {
		sim.Step(springStep.Seconds())
		samples[i] = sim.Position()
	}
	samples[n] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * float64(n)
		i := int(x)
		return animation.LerpFloat64(samples[i], samples[i+1], x-float64(i))
	}
}

// LabelSpring is the curve label pose changes follow.
var LabelSpring = SpringCurve(animation.NewSpringSimulation(animation.IOSSpring(), 0, 0, 1), SpringDuration)

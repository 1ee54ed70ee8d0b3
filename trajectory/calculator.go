package trajectory

// Calculator is the uniform contract both OMIB trajectory calculators
// satisfy, letting callers pick Taylor or numerical integration without
// branching on the concrete type.
type Calculator interface {
	CriticalAndMaximumTimes(criticalAngle, maximumAngle float64) (criticalTime, maximumTime float64, err error)
}

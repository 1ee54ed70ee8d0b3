package identifier

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
)

// DuringFaultTrajectoryIdentifier estimates each generator's angle swing
// during the fault with a fourth-order Taylor expansion of the swing
// equation around t=0, avoiding a full trajectory integration just to rank
// machines.
type DuringFaultTrajectoryIdentifier struct {
	*GapIdentifier
}

// NewDuringFaultTrajectoryIdentifier builds the identifier. timeStepMs is
// the during-fault instant (milliseconds) at which the Taylor expansion is
// evaluated.
func NewDuringFaultTrajectoryIdentifier(net *network.Network, generators []*network.DynamicGenerator, timeStepMs float64, tsoCustomization string, opts ...Option) (*DuringFaultTrajectoryIdentifier, error) {
	matrixA, matrixB, err := duringFaultPowerMatrices(net, generators)
	if err != nil {
		return nil, err
	}
	d2, d4 := angleDerivatives(net, generators, matrixA, matrixB)

	t := timeStepMs / 1000
	variation := make([]float64, len(generators))
	for i := range generators {
		variation[i] = (d2[i]*t*t/2 + d4[i]*math.Pow(t, 4)/24) * 180 / math.Pi
	}

	gi := newGapIdentifier(net.BaseMVA, generators, tsoCustomization, opts...)
	if err := gi.rank(variation); err != nil {
		return nil, err
	}
	return &DuringFaultTrajectoryIdentifier{GapIdentifier: gi}, nil
}

// duringFaultPowerMatrices builds the coefficient matrices of the second
// and fourth order angle-derivative Taylor terms, evaluated against the
// during-fault admittance matrix at the t=0 rotor angles.
func duringFaultPowerMatrices(net *network.Network, generators []*network.DynamicGenerator) (matrixA, matrixB [][]float64, err error) {
	n := len(generators)
	matrixA = make([][]float64, n)
	matrixB = make([][]float64, n)
	for i, gi := range generators {
		matrixA[i] = make([]float64, n)
		matrixB[i] = make([]float64, n)
		angleI, err := gi.RotorAngleAt(0)
		if err != nil {
			return nil, nil, err
		}
		voltageI := gi.VoltageMagnitude()
		for j, gj := range generators {
			magnitude, phase, err := net.GetAdmittance(gi.HostBusName(), gj.HostBusName(), network.DuringFault)
			if err != nil {
				return nil, nil, err
			}
			angleJ, err := gj.RotorAngleAt(0)
			if err != nil {
				return nil, nil, err
			}
			voltageJ := gj.VoltageMagnitude()
			angle := angleI - angleJ - phase
			matrixA[i][j] = voltageI * voltageJ * magnitude * math.Cos(angle)
			matrixB[i][j] = voltageI * voltageJ * magnitude * math.Sin(angle)
		}
	}
	return matrixA, matrixB, nil
}

// angleDerivatives computes the second- and fourth-order angle derivatives
// of the swing equation at t=0 from the Taylor power-coefficient matrices.
func angleDerivatives(net *network.Network, generators []*network.DynamicGenerator, matrixA, matrixB [][]float64) (d2, d4 []float64) {
	n := len(generators)
	d2 = make([]float64, n)
	for i, g := range generators {
		sum := 0.0
		for _, v := range matrixA[i] {
			sum += v
		}
		d2[i] = net.Pulse * (g.MechanicalPower() - sum) / g.InertiaCoefficient(net.BaseMVA)
	}
	d4 = make([]float64, n)
	for i, g := range generators {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += matrixB[i][j] * (d2[i] - d2[j])
		}
		d4[i] = net.Pulse * sum / g.InertiaCoefficient(net.BaseMVA)
	}
	return d2, d4
}

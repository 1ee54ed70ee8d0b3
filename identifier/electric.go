package identifier

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
)

func dynGenMap(gens []*network.DynamicGenerator) map[string]*network.DynamicGenerator {
	m := make(map[string]*network.DynamicGenerator, len(gens))
	for _, g := range gens {
		m[g.Name()] = g
	}
	return m
}

// initialElectricPower sums gen's t=0 electric power contribution from every
// generator in all (including itself), against the during-fault admittance
// matrix.
func initialElectricPower(net *network.Network, gen *network.DynamicGenerator, all []*network.DynamicGenerator, byName map[string]*network.DynamicGenerator) (float64, error) {
	angleI, err := gen.RotorAngleAt(0)
	if err != nil {
		return 0, err
	}
	power := 0.0
	for _, other := range all {
		voltageProduct, err := net.GetGeneratorVoltageAmplitudeProduct(gen.Name(), other.Name(), byName)
		if err != nil {
			return 0, err
		}
		magnitude, phase, err := net.GetAdmittance(gen.HostBusName(), other.HostBusName(), network.DuringFault)
		if err != nil {
			return 0, err
		}
		angleJ, err := other.RotorAngleAt(0)
		if err != nil {
			return 0, err
		}
		power += voltageProduct * magnitude * math.Cos(angleI-angleJ-phase)
	}
	return power, nil
}

// initialAcceleration is the rotor acceleration at t=0, Pulse*(Pm-Pe)/M.
func initialAcceleration(net *network.Network, gen *network.DynamicGenerator, all []*network.DynamicGenerator, byName map[string]*network.DynamicGenerator) (float64, error) {
	power, err := initialElectricPower(net, gen, all, byName)
	if err != nil {
		return 0, err
	}
	diff := gen.MechanicalPower() - power
	return net.Pulse * diff / gen.InertiaCoefficient(net.BaseMVA), nil
}

package omib

import (
	"github.com/katalvlaran/deeac-go/network"
)

// zeroDeviation is the ZOOMIB angular-deviation strategy: every generator's
// deviation from its cluster's partial center of angle is always zero.
func zeroDeviation(name string, cluster *network.GeneratorCluster, _ float64, _ network.NetworkState) (float64, error) {
	if !cluster.Contains(name) {
		return 0, ErrClusterMember
	}
	return 0, nil
}

// dynamicDeviation is the DOMIB angular-deviation strategy: the generator's
// actual deviation at the requested time, tracked as the trajectory
// evolves.
func dynamicDeviation(name string, cluster *network.GeneratorCluster, t float64, _ network.NetworkState) (float64, error) {
	return cluster.AngularDeviation(name, t)
}

// constantDeviation builds the COOMIB angular-deviation strategy: every
// request is served from the deviation computed once at the pre-fault
// state (time 0), memoized per generator.
func constantDeviation() DeviationFunc {
	frozen := make(map[string]float64)
	return func(name string, cluster *network.GeneratorCluster, _ float64, _ network.NetworkState) (float64, error) {
		if v, ok := frozen[name]; ok {
			return v, nil
		}
		v, err := cluster.AngularDeviation(name, 0)
		if err != nil {
			return 0, err
		}
		frozen[name] = v
		return v, nil
	}
}

// NewZOOMIB builds a Zero-Offset OMIB: generator angular deviations from
// their cluster's center of angle are taken as zero throughout, so the
// OMIB tracks the raw difference of the two clusters' rotor angles.
func NewZOOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	critical.Reset()
	nonCritical.Reset()
	return newModel(net, critical, nonCritical, zeroDeviation, nil)
}

// NewCOOMIB builds a Constant-Offset OMIB: generator angular deviations are
// frozen at their pre-fault value for the lifetime of the OMIB.
func NewCOOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	critical.Reset()
	nonCritical.Reset()
	return newModel(net, critical, nonCritical, constantDeviation(), nil)
}

// NewDOMIB builds a Dynamic OMIB: generator angular deviations are
// re-evaluated against the live trajectory at every requested time.
func NewDOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	return newModel(net, critical, nonCritical, dynamicDeviation, nil)
}

// revisedInitialAngle computes the Revised family's initial rotor angle:
// the direct pre-fault (t=0) difference of the two clusters' partial
// centers of angle, bypassing the arcsine-based power-curve intersection.
func revisedInitialAngle(critical, nonCritical *network.GeneratorCluster) (float64, error) {
	c, err := critical.PartialCenterOfAngle(0)
	if err != nil {
		return 0, err
	}
	n, err := nonCritical.PartialCenterOfAngle(0)
	if err != nil {
		return 0, err
	}
	return c - n, nil
}

// NewRevisedZOOMIB builds a ZOOMIB whose initial rotor angle is the
// Revised-family direct center-of-angle difference.
func NewRevisedZOOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	angle, err := revisedInitialAngle(critical, nonCritical)
	if err != nil {
		return nil, err
	}
	critical.Reset()
	nonCritical.Reset()
	return newModel(net, critical, nonCritical, zeroDeviation, &angle)
}

// NewRevisedCOOMIB builds a COOMIB whose initial rotor angle is the
// Revised-family direct center-of-angle difference.
func NewRevisedCOOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	angle, err := revisedInitialAngle(critical, nonCritical)
	if err != nil {
		return nil, err
	}
	critical.Reset()
	nonCritical.Reset()
	return newModel(net, critical, nonCritical, constantDeviation(), &angle)
}

// NewRevisedDOMIB builds a DOMIB whose initial rotor angle is the
// Revised-family direct center-of-angle difference.
func NewRevisedDOMIB(net *network.Network, critical, nonCritical *network.GeneratorCluster) (*Model, error) {
	angle, err := revisedInitialAngle(critical, nonCritical)
	if err != nil {
		return nil, err
	}
	return newModel(net, critical, nonCritical, dynamicDeviation, &angle)
}

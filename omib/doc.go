// Package omib builds One-Machine-Infinite-Bus (OMIB) reductions of a
// critical/non-critical generator cluster pair: a single equivalent swing
// equation whose power curve (constant power, maximum power, angle shift)
// is assembled from the pairwise admittance and angular-deviation terms of
// every generator combination, plus any REN (non-synchronous injector)
// cluster present on the network.
//
// Three variants share the same construction pipeline and differ only in
// how a generator's angular deviation from its cluster's partial center of
// angle is computed: ZOOMIB (always zero), COOMIB (frozen at the pre-fault
// value), DOMIB (tracked dynamically) and each has a Revised counterpart
// that replaces the arcsine-derived initial rotor angle with the direct
// difference of the two clusters' partial centers of angle.
//
// The package implements package trajectory's OMIBModel interface so an
// OMIB can be driven directly by OMIBTaylorSeries or
// OMIBNumericalIntegrator without either package depending on the other's
// concrete types.
package omib

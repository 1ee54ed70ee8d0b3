// Package trajectory implements the L3 rotor-angle trajectory calculators:
// the OMIB Taylor series (angle -> time) and the multi-machine Taylor series
// (time -> angle), plus a numerical integrator that callers can pick instead
// of the OMIB Taylor series; neither OMIB calculator falls back to the other.
//
// Both calculators depend only on small consumer-defined interfaces
// (OMIBModel, DynamicGenerator, AdmittanceSource) rather than importing
// package omib or package network's
// concrete DynamicGenerator directly, avoiding a layering cycle between L3
// and L4.
package trajectory

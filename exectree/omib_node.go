package exectree

import (
	"fmt"

	"github.com/katalvlaran/deeac-go/omib"
)

// OMIBKind names which OMIB variant an OMIBNode builds.
type OMIBKind int

const (
	ZOOMIB OMIBKind = iota
	RevisedZOOMIB
	COOMIB
	RevisedCOOMIB
	DOMIB
	RevisedDOMIB
)

func (k OMIBKind) String() string {
	switch k {
	case ZOOMIB:
		return "ZOOMIB"
	case RevisedZOOMIB:
		return "RevisedZOOMIB"
	case COOMIB:
		return "COOMIB"
	case RevisedCOOMIB:
		return "RevisedCOOMIB"
	case DOMIB:
		return "DOMIB"
	case RevisedDOMIB:
		return "RevisedDOMIB"
	default:
		return "Unknown"
	}
}

// OMIBNode builds an OMIB model from a network and a critical/non-critical
// cluster split.
type OMIBNode struct {
	base
	kind     OMIBKind
	lastOMIB *omib.Model
}

// NewOMIBNode builds a node of the given OMIB variant.
func NewOMIBNode(id, name string, kind OMIBKind) *OMIBNode {
	return &OMIBNode{base: newBase(id, name), kind: kind}
}

func (n *OMIBNode) InputTypes() TypeSet {
	return NewTypeSet(Network, CritCluster, NonCritCluster)
}

func (n *OMIBNode) OutputTypes() TypeSet { return NewTypeSet(OMIB) }

func (n *OMIBNode) CanBeLeaf() bool { return false }

func (n *OMIBNode) Run(bag *IOBag) error {
	var (
		m   *omib.Model
		err error
	)
	switch n.kind {
	case ZOOMIB:
		m, err = omib.NewZOOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	case RevisedZOOMIB:
		m, err = omib.NewRevisedZOOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	case COOMIB:
		m, err = omib.NewCOOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	case RevisedCOOMIB:
		m, err = omib.NewRevisedCOOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	case DOMIB:
		m, err = omib.NewDOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	case RevisedDOMIB:
		m, err = omib.NewRevisedDOMIB(bag.Network, bag.CritCluster, bag.NonCritCluster)
	default:
		err = ErrUnknownOMIBKind
	}
	if err != nil {
		return n.fail(err)
	}
	n.lastOMIB = m
	bag.OMIB = m
	return nil
}

// Report renders the OMIB variant used and, once built, its classified
// stability/swing state.
func (n *OMIBNode) Report() string {
	report := fmt.Sprintf("%s\tConfiguration:\n\t\tType of OMIB: %s\n", n.baseReport(), n.kind)
	if n.cancelled || n.failed || n.lastOMIB == nil {
		return report
	}
	return fmt.Sprintf(
		"%s\tOutput:\n\t\tStability state: %s\n\t\tSwing state: %s\n",
		report, n.lastOMIB.StabilityStateValue(), n.lastOMIB.SwingStateValue(),
	)
}

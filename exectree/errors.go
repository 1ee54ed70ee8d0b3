package exectree

import "errors"

var (
	// ErrDuplicateNodeID indicates two nodes in the same tree share an ID.
	ErrDuplicateNodeID = errors.New("exectree: duplicate node id")

	// ErrMissingInput indicates a node requires an IOType no earlier node
	// in the tree produces.
	ErrMissingInput = errors.New("exectree: node input not produced by any earlier node")

	// ErrTreeEmpty indicates a tree was built with no nodes.
	ErrTreeEmpty = errors.New("exectree: tree has no nodes")

	// ErrTreeMustEndInLeaf indicates the last node of a tree cannot be a
	// leaf (e.g. it always has further required outputs consumed
	// downstream in the reference model).
	ErrTreeMustEndInLeaf = errors.New("exectree: tree's last node cannot be a leaf")

	// ErrUnknownIdentifierKind indicates an IdentifierConfig named a kind
	// this package does not know how to build.
	ErrUnknownIdentifierKind = errors.New("exectree: unknown critical clusters identifier kind")

	// ErrUnknownOMIBKind indicates an OMIBKind value naming a variant this
	// package does not know how to build.
	ErrUnknownOMIBKind = errors.New("exectree: unknown OMIB kind")

	// ErrUnknownCalculatorKind indicates a CalculatorKind value naming a
	// calculator this package does not know how to build.
	ErrUnknownCalculatorKind = errors.New("exectree: unknown OMIB trajectory calculator kind")

	// ErrNoClusterResultsProduced indicates every candidate cluster
	// evaluation failed, leaving nothing for the selector to choose from.
	ErrNoClusterResultsProduced = errors.New("exectree: no candidate cluster produced a result")
)

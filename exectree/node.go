package exectree

import "fmt"

// Node is one step of an execution tree: it declares the IOTypes it needs
// and produces, and runs against a shared IOBag.
type Node interface {
	ID() string
	Name() string
	InputTypes() TypeSet
	OutputTypes() TypeSet
	CanBeLeaf() bool
	Run(bag *IOBag) error
	Cancelled() bool
	CancelMessage() string
	Failed() bool
	Ran() bool
	Reset()

	// Report renders the node's identity, configuration and (if it ran to
	// completion) outputs as human-readable text, the node-level equivalent
	// of the reference engine's per-node .txt report.
	Report() string

	markRan()
}

// base implements the bookkeeping shared by every concrete node: identity,
// cancellation and failure state. Concrete nodes embed it and implement
// InputTypes/OutputTypes/CanBeLeaf/Run/Report themselves.
type base struct {
	id        string
	name      string
	cancelled bool
	cancelMsg string
	failed    bool
	lastErr   error
	ran       bool
}

func newBase(id, name string) base { return base{id: id, name: name} }

func (b *base) ID() string   { return b.id }
func (b *base) Name() string { return b.name }

func (b *base) Cancelled() bool       { return b.cancelled }
func (b *base) CancelMessage() string { return b.cancelMsg }
func (b *base) Failed() bool          { return b.failed }
func (b *base) Ran() bool             { return b.ran }

func (b *base) markRan() { b.ran = true }

// cancel marks the node as cancelled rather than failed: a cancelled node
// produced no error, it was simply skipped because an upstream condition
// (e.g. the OMIB not being potentially stable) made running it pointless.
func (b *base) cancel(msg string) {
	b.cancelled = true
	b.cancelMsg = msg
}

// fail marks the node as failed, records err for the report, and returns it
// so call sites can write `return n.fail(err)`.
func (b *base) fail(err error) error {
	b.failed = true
	b.lastErr = err
	return err
}

// Reset clears cancellation/failure state so the node can run again, as
// Tree.Run does for an EvaluatorNode's sub-tree once per candidate cluster.
func (b *base) Reset() {
	b.cancelled = false
	b.cancelMsg = ""
	b.failed = false
	b.lastErr = nil
	b.ran = false
}

// completeID concatenates id and name the way the reference engine's report
// file names do, falling back to the bare id when name is empty.
func (b *base) completeID() string {
	if b.name == "" {
		return b.id
	}
	return fmt.Sprintf("%s_%s", b.id, b.name)
}

// baseReport renders the header every node's Report shares: identity, plus
// cancellation/failure status when applicable. Concrete nodes call this
// first and append their own configuration/output sections.
func (b *base) baseReport() string {
	header := fmt.Sprintf("Report for node %s:\n", b.completeID())
	switch {
	case b.cancelled:
		if b.cancelMsg != "" {
			return fmt.Sprintf("%s\tExecution was cancelled: %s\n", header, b.cancelMsg)
		}
		return fmt.Sprintf("%s\tExecution was cancelled.\n", header)
	case b.failed:
		if b.lastErr != nil {
			return fmt.Sprintf("%s\tExecution failed: %s\n", header, b.lastErr)
		}
		return fmt.Sprintf("%s\tExecution failed.\n", header)
	}
	return header
}

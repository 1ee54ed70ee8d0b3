package exectree

// IOType names one kind of value a node can require as input or promise as
// output, mirroring the reference engine's typed IO contract between tree
// nodes.
type IOType int

const (
	Network IOType = iota
	DynamicGenerators
	CritCluster
	NonCritCluster
	ClustersIterator
	CritAngle
	MaxAngle
	OMIB
	ClusterResult
	ClusterResultsIterator
	OutputDir
)

func (t IOType) String() string {
	switch t {
	case Network:
		return "NETWORK"
	case DynamicGenerators:
		return "DYNAMIC_GENERATORS"
	case CritCluster:
		return "CRIT_CLUSTER"
	case NonCritCluster:
		return "NON_CRIT_CLUSTER"
	case ClustersIterator:
		return "CLUSTERS_ITERATOR"
	case CritAngle:
		return "CRIT_ANGLE"
	case MaxAngle:
		return "MAX_ANGLE"
	case OMIB:
		return "OMIB"
	case ClusterResult:
		return "CLUSTER_RESULTS"
	case ClusterResultsIterator:
		return "CLUSTER_RESULTS_ITERATOR"
	case OutputDir:
		return "OUTPUT_DIR"
	default:
		return "UNKNOWN"
	}
}

// TypeSet is a small unordered set of IOTypes, used to declare a node's
// input and output contracts.
type TypeSet map[IOType]struct{}

// NewTypeSet builds a TypeSet from the given types.
func NewTypeSet(types ...IOType) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t belongs to the set.
func (s TypeSet) Has(t IOType) bool {
	_, ok := s[t]
	return ok
}

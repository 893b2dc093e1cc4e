package config

import "strings"

// DefaultMaxDepth is the nesting limit applied to recursive traversals when
// none is configured.
const DefaultMaxDepth = 64

// Conventions names the markers and well-known nodes of a real-time
// application document. The defaults follow the MARTe2 configuration format.
type Conventions struct {
	// ClassAttribute is the attribute holding a node's type tag.
	ClassAttribute string

	ApplicationClass  string
	GroupClass        string
	StateMachineClass string

	StatesRoot    string
	ThreadsRoot   string
	FunctionsRoot string
	DataRoot      string

	// ExecutionList is the thread attribute listing functions in call order.
	ExecutionList string

	InputSignals        string
	OutputSignals       string
	DataSourceAttribute string

	NextState      string
	NextStateError string

	// EntryEvents are the event names whose actions run when a state is
	// entered. Matching is case-insensitive.
	EntryEvents []string
}

// DefaultConventions returns the MARTe2 naming.
func DefaultConventions() Conventions {
	return Conventions{
		ClassAttribute:      "Class",
		ApplicationClass:    "RealTimeApplication",
		GroupClass:          "ReferenceContainer",
		StateMachineClass:   "StateMachine",
		StatesRoot:          "+States",
		ThreadsRoot:         "+Threads",
		FunctionsRoot:       "+Functions",
		DataRoot:            "+Data",
		ExecutionList:       "Functions",
		InputSignals:        "InputSignals",
		OutputSignals:       "OutputSignals",
		DataSourceAttribute: "DataSource",
		NextState:           "NextState",
		NextStateError:      "NextStateError",
		EntryEvents:         []string{"ENTER", "entry"},
	}
}

// IsEntryEvent reports whether name designates a state's entry event.
func (c Conventions) IsEntryEvent(name string) bool {
	for _, e := range c.EntryEvents {
		if strings.EqualFold(e, name) {
			return true
		}
	}
	return false
}

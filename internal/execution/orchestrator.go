package execution

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"xrun/internal/results"
	"xrun/xunit"
)

// Orchestrator drives the lifecycle of one test-case type at a time:
// construct, setup, every test, teardown.
type Orchestrator struct {
	out   io.Writer
	debug bool
	log   zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator. Debug messages go to out.
func NewOrchestrator(out io.Writer, debug bool, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{out: out, debug: debug, log: log}
}

// Execute runs the lifecycle of typ and reports each outcome to agg.
//
// Setup and test failures are recorded and execution continues. A
// constructor or teardown failure is returned as a *FatalError and the
// caller must stop the run. Abstract types are skipped.
func (o *Orchestrator) Execute(typ *xunit.Type, agg *results.Aggregator) error {
	if typ.Abstract {
		o.log.Debug().Str("type", typ.ID).Msg("Skipping abstract type")
		return nil
	}

	fixture, err := typ.New()
	if err != nil {
		return &FatalError{Type: typ.ID, Stage: "construction", Err: err}
	}

	plan := Classify(typ)
	o.log.Debug().
		Str("type", typ.ID).
		Int("tests", len(plan.Tests)).
		Bool("inherited_setup", plan.SetUpInherited).
		Bool("inherited_teardown", plan.TearDownInherited).
		Msg("Executing type")

	for _, hook := range plan.SetUp {
		if err := hook.Invoke(fixture); err != nil {
			agg.Fail(newErrorRecord(typ.ID, plan.setUpName, err))
			break
		}
	}

	if o.debug {
		fmt.Fprintf(o.out, "\n🔍 Debug: Running test for %s...\n", typ.ID)
	}

	for _, test := range plan.Tests {
		if err := test.Invoke(fixture); err != nil {
			agg.Fail(newErrorRecord(typ.ID, test.Name, err))
			continue
		}
		agg.Pass()
	}

	for _, hook := range plan.TearDown {
		if err := hook.Invoke(fixture); err != nil {
			return &FatalError{Type: typ.ID, Method: hook.Name, Stage: "teardown", Err: err}
		}
	}

	return nil
}

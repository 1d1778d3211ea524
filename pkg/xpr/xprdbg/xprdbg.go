package xprdbg

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/ib-77/xpr/pkg/xpr/attempt"
	"github.com/ib-77/xpr/pkg/xpr/match"
)

// CatcherPlan renders the registered evaluation strategy of c: interception
// classes, recovery pairs in scan order, fallback and cleanup presence.
// Rendering never executes any thunk.
func CatcherPlan[T any](c *attempt.Catcher[T]) string {
	tree := tp.New()
	tree.SetValue("catcher")

	intercepts := tree.AddBranch("intercepts")
	for _, class := range c.Classes() {
		intercepts.AddNode(class.Error())
	}

	if classes := c.RecoveryClasses(); len(classes) > 0 {
		recoveries := tree.AddBranch("recoveries")
		for i, class := range classes {
			recoveries.AddNode(fmt.Sprintf("%d: %s", i, class.Error()))
		}
	}

	if c.HasFallback() {
		tree.AddNode("fallback")
	}
	if c.HasCleanup() {
		tree.AddNode("cleanup")
	}
	return tree.String()
}

// SwitchPlan renders a switch subject, its case conditions in scan order
// and the configured default mode. Rendering never executes any thunk.
func SwitchPlan[T any](s match.Switch[T], cases ...match.Case[T]) string {
	tree := tp.New()
	tree.SetValue(fmt.Sprintf("switch(%v)", s.Subject()))

	for i, c := range cases {
		tree.AddNode(fmt.Sprintf("case %d: %v", i, c.Condition()))
	}

	switch {
	case s.HasDefault() && s.HasDefaultFactory():
		tree.AddNode("default: conflict")
	case s.HasDefault():
		tree.AddNode("default: value")
	case s.HasDefaultFactory():
		tree.AddNode("default: factory")
	}
	return tree.String()
}

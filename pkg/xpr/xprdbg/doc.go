// Package xprdbg renders the registered strategy of catcher and switch
// chains as trees, for debugging and documentation.
package xprdbg

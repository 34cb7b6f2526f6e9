// Package error provides coded, structured errors for the zunder foundation.
//
// Package: error
// Title: zunder Error Handling
// Description: Structured errors with a machine readable code, a severity,
//              free-form details and the operation that produced them. The
//              command engine records binding and traversal failures with
//              these errors; configuration loading reports through them too.
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-02 v0.1.0: Coded errors with severity and details
// - 2026-10-11 v0.2.0: Binding and traversal codes for the command engine
//
// Usage:
//
//	err := zderror.New("Could not consume arg: frob").
//		WithCode(zderror.CodeMemberNotFound).
//		WithDetail("arg", "frob")
//
//	if zderror.HasCode(err, zderror.CodeMemberNotFound) {
//		// render usage for the last healthy component
//	}
package error

// Package action implements the user-invokable triggers as an explicit
// interface with two methods: Available gates the trigger, Execute runs it.
//
// Three variants exist. OpenCurrent and OpenSelection open the working tree
// containing the target in the GUI client; CreateRepository is the inverse —
// it is only available outside a working tree and hands the raw directory to
// the client so the client can initialize a repository there.
//
// Each invocation is a pure function of its target plus external process
// state: no memory is kept across invocations and no two operations
// coordinate with each other.
package action

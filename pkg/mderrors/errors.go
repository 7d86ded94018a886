// Package mderrors declares the error taxonomy surfaced by the reconciler:
// KubeError, JsonError, ValidationError, and ReplicaCalculationError. Every
// error returned by a reconcile becomes exactly one of these, is logged
// once by the host at the error level, and drives a requeue — no error is
// swallowed inside the reconciler.
package mderrors

import "fmt"

// KubeError wraps any failure from the cluster client: network, auth, an
// apply conflict the server would not resolve, or a missing CRD. Not
// locally recoverable; always triggers a requeue.
type KubeError struct {
	Err error
}

func (e *KubeError) Error() string { return fmt.Sprintf("kube error: %v", e.Err) }
func (e *KubeError) Unwrap() error { return e.Err }

// JsonError wraps a serialization or template-merge failure during child
// building. It indicates a malformed input that validation did not catch,
// so it should be rare; it still triggers a requeue.
type JsonError struct {
	Err error
}

func (e *JsonError) Error() string { return fmt.Sprintf("json error: %v", e.Err) }
func (e *JsonError) Unwrap() error { return e.Err }

// ValidationError means the parent object violated one of the reconciler's
// validation rules. It is locally terminal for this reconcile but still
// requeued, since the user may edit the parent at any time.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("validation error: %s", e.Message) }

// ReplicaCalculationError wraps an allocation error from the allocator. Same
// disposition as ValidationError.
type ReplicaCalculationError struct {
	Err error
}

func (e *ReplicaCalculationError) Error() string {
	return fmt.Sprintf("replica calculation error: %v", e.Err)
}
func (e *ReplicaCalculationError) Unwrap() error { return e.Err }

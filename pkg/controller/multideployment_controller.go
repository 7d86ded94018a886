// Package controller implements the MultiDeployment reconciler: it turns a
// parent's total replica budget and per-child weights/minima into a set of
// owned sibling Deployments, recomputing and reapplying the full set on
// every reconcile.
package controller

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
	"github.com/skystar-dev/multi-deployment-controller/pkg/allocator"
	"github.com/skystar-dev/multi-deployment-controller/pkg/childbuilder"
	"github.com/skystar-dev/multi-deployment-controller/pkg/mderrors"
)

// DefaultRequeueDelay is the fixed delay applied after any reconcile error,
// matching the reference controller's policy.
const DefaultRequeueDelay = 5 * time.Minute

// MultiDeploymentReconciler reconciles MultiDeployment objects into their
// owned child Deployments.
type MultiDeploymentReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Builder *childbuilder.Builder
	Applier ChildApplier

	// RequeueDelay overrides DefaultRequeueDelay when non-zero. Exposed so a
	// host process can tune it without a code change.
	RequeueDelay time.Duration
}

// SetupWithManager wires the reconciler into mgr, watching MultiDeployment
// parents directly and their owned Deployments so a manual edit of a child
// triggers a re-reconcile of its parent.
func (r *MultiDeploymentReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Builder == nil {
		r.Builder = childbuilder.New(mgr.GetScheme())
	}
	if r.Applier == nil {
		r.Applier = NewSSAApplier(mgr.GetClient())
	}
	return ctrl.NewControllerManagedBy(mgr).
		For(&mdv1.MultiDeployment{}).
		Owns(&appsv1.Deployment{}).
		Complete(r)
}

// Reconcile validates the parent, computes the allocation, builds each
// child, and applies it in child-key order. It aborts on the first apply
// failure, leaving children not yet processed for the next reconcile.
func (r *MultiDeploymentReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	parent := &mdv1.MultiDeployment{}
	if err := r.Get(ctx, req.NamespacedName, parent); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{RequeueAfter: r.requeueDelay()}, &mderrors.KubeError{Err: fmt.Errorf("get MultiDeployment: %w", err)}
	}

	if err := r.reconcile(ctx, parent); err != nil {
		logger.Error(err, "reconcile failed", "multideployment", req.NamespacedName)
		return ctrl.Result{RequeueAfter: r.requeueDelay()}, err
	}

	return ctrl.Result{}, nil
}

func (r *MultiDeploymentReconciler) requeueDelay() time.Duration {
	if r.RequeueDelay > 0 {
		return r.RequeueDelay
	}
	return DefaultRequeueDelay
}

func (r *MultiDeploymentReconciler) reconcile(ctx context.Context, parent *mdv1.MultiDeployment) error {
	if err := validate(parent); err != nil {
		return err
	}

	keys := parent.SortedChildKeys()
	total := replicasOf(parent)

	allocation, err := allocate(total, parent, keys)
	if err != nil {
		return &mderrors.ReplicaCalculationError{Err: err}
	}

	for i, key := range keys {
		dep, err := r.Builder.Build(parent, key, int32(allocation[i]))
		if err != nil {
			return &mderrors.JsonError{Err: err}
		}
		if err := r.Applier.Apply(ctx, dep); err != nil {
			return &mderrors.KubeError{Err: err}
		}
	}

	return nil
}

// allocate computes the per-child replica counts for parent's children, in
// keys order. Paused mode (total == 0) is resolved before the allocator is
// ever consulted: every child gets zero, regardless of its minReplicas. This
// avoids the Infeasible error the allocator would otherwise raise for any
// child with a positive minReplicas when the budget is zero.
func allocate(total int32, parent *mdv1.MultiDeployment, keys []string) ([]int64, error) {
	if total == 0 {
		return make([]int64, len(keys)), nil
	}

	minima := make([]int64, len(keys))
	weights := make([]float64, len(keys))
	for i, key := range keys {
		child := parent.Spec.Children[key]
		minima[i] = int64(minReplicasOf(child))
		weights[i] = float64(weightOf(child))
	}

	return allocator.Allocate(int64(total), minima, weights)
}

// validate enforces the reconciler's ordered validation rules; the first
// failing rule determines the returned ValidationError.
func validate(parent *mdv1.MultiDeployment) error {
	if len(parent.Spec.Children) == 0 {
		return &mderrors.ValidationError{Message: "children map must not be empty"}
	}

	var weightSum int64
	for _, key := range parent.SortedChildKeys() {
		child := parent.Spec.Children[key]
		w := weightOf(child)
		if w < 0 {
			return &mderrors.ValidationError{Message: fmt.Sprintf("child %q has negative weight", key)}
		}
		weightSum += int64(w)

		if minReplicasOf(child) < 0 {
			return &mderrors.ValidationError{Message: fmt.Sprintf("child %q has negative minReplicas", key)}
		}
	}

	total := replicasOf(parent)
	if total < 0 {
		return &mderrors.ValidationError{Message: "replicas must be non-negative"}
	}

	if total != 0 {
		var minSum int64
		for _, child := range parent.Spec.Children {
			minSum += int64(minReplicasOf(child))
		}
		if minSum > int64(total) {
			return &mderrors.ValidationError{Message: fmt.Sprintf("sum of minReplicas (%d) exceeds replicas (%d)", minSum, total)}
		}
		if weightSum == 0 {
			return &mderrors.ValidationError{Message: "sum of weights must be non-zero when replicas is non-zero"}
		}
	}

	return nil
}

func replicasOf(parent *mdv1.MultiDeployment) int32 {
	if parent.Spec.Replicas == nil {
		return 0
	}
	return *parent.Spec.Replicas
}

func minReplicasOf(child mdv1.Child) int32 {
	if child.MinReplicas == nil {
		return 0
	}
	return *child.MinReplicas
}

func weightOf(child mdv1.Child) int32 {
	if child.Weight == nil {
		return 0
	}
	return *child.Weight
}

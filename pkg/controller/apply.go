package controller

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
)

// ChildApplier writes one owned child Deployment to the cluster. It is the
// narrow seam between the reconciler's pure build step and the network, so
// reconcile logic can be exercised against a fake writer without a real API
// server.
type ChildApplier interface {
	Apply(ctx context.Context, dep *appsv1.Deployment) error
}

// ssaApplier is the production ChildApplier. It writes every child with
// server-side apply, owned by a single field manager, forcing ownership of
// any field a previous manager (kubectl, a human edit) holds. This makes
// reconcile naturally idempotent: re-applying an unchanged object is a no-op
// on the server, and a changed field (a bumped image, a reweighted replica
// count) is the only thing that generates a write.
type ssaApplier struct {
	client client.Client
}

// NewSSAApplier returns a ChildApplier that applies through c using
// mdv1.FieldManager as its field manager.
func NewSSAApplier(c client.Client) ChildApplier {
	return &ssaApplier{client: c}
}

func (a *ssaApplier) Apply(ctx context.Context, dep *appsv1.Deployment) error {
	// Server-side apply encodes the object as submitted, so the typed
	// client's usual GVK-stripping would otherwise produce a patch with no
	// apiVersion/kind.
	dep.TypeMeta = metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"}
	if err := a.client.Patch(ctx, dep, client.Apply,
		client.FieldOwner(mdv1.FieldManager),
		client.ForceOwnership,
	); err != nil {
		return fmt.Errorf("apply deployment %s/%s: %w", dep.Namespace, dep.Name, err)
	}
	return nil
}

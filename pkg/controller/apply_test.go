package controller

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func TestSSAApplier_AppliesThroughFakeClient(t *testing.T) {
	scheme := runtime.NewScheme()
	require.NoError(t, appsv1.AddToScheme(scheme))

	fakeClient := fake.NewClientBuilder().WithScheme(scheme).Build()
	applier := NewSSAApplier(fakeClient)

	dep := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "web-a", Namespace: "default"},
		Spec: appsv1.DeploymentSpec{
			Selector: &metav1.LabelSelector{MatchLabels: map[string]string{"app": "web"}},
		},
	}

	err := applier.Apply(context.Background(), dep)
	require.NoError(t, err)

	var got appsv1.Deployment
	key := types.NamespacedName{Namespace: "default", Name: "web-a"}
	require.NoError(t, fakeClient.Get(context.Background(), key, &got))
	assert.Equal(t, "web-a", got.Name)
}

// recordingApplier is a ChildApplier test double that records every
// Deployment it was asked to apply, optionally failing at a given index.
type recordingApplier struct {
	applied []*appsv1.Deployment
	failAt  int
}

func (r *recordingApplier) Apply(_ context.Context, dep *appsv1.Deployment) error {
	if r.failAt >= 0 && len(r.applied) == r.failAt {
		r.applied = append(r.applied, dep)
		return fmt.Errorf("simulated apply failure for %s", dep.Name)
	}
	r.applied = append(r.applied, dep)
	return nil
}

// Package childbuilder turns a MultiDeployment parent plus a computed
// replica count into a fully-populated owned Deployment, ready for
// server-side apply. It performs no I/O: the root template and the child's
// override are serialized to a common structured-document form, merged with
// RFC-7396 JSON Merge Patch semantics (child-side null deletes a key, child
// arrays fully replace root arrays, objects recurse), and deserialized back
// into a DeploymentSpec.
package childbuilder

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
)

// Builder constructs owned child Deployments for a MultiDeployment parent.
// Scheme is used only to look up the parent's GroupVersionKind when
// stamping the owner reference; Build performs no cluster I/O.
type Builder struct {
	Scheme *runtime.Scheme
}

// New returns a Builder that stamps owner references using scheme.
func New(scheme *runtime.Scheme) *Builder {
	return &Builder{Scheme: scheme}
}

// Build produces the Deployment for childKey with the given replica count.
// The result carries a controller owner reference to parent, a selector and
// pod-template carrying the managed-by label unique to (parent, childKey),
// and a spec merged from the parent's root template and the child's
// override.
func (b *Builder) Build(parent *mdv1.MultiDeployment, childKey string, replicas int32) (*appsv1.Deployment, error) {
	child, ok := parent.Spec.Children[childKey]
	if !ok {
		return nil, fmt.Errorf("childbuilder: unknown child %q", childKey)
	}

	managedBy := parent.ManagedByValue(childKey)

	selector := parent.Spec.RootTemplate.Selector.DeepCopy()
	if selector == nil {
		selector = &metav1.LabelSelector{}
	}
	if selector.MatchLabels == nil {
		selector.MatchLabels = map[string]string{}
	}
	selector.MatchLabels[mdv1.ManagedByLabelKey] = managedBy

	podLabels := map[string]string{}
	for k, v := range parent.Spec.RootTemplate.Template.Labels {
		podLabels[k] = v
	}
	podLabels[mdv1.ManagedByLabelKey] = managedBy

	childSpec := appsv1.DeploymentSpec{
		Replicas: &replicas,
		Selector: selector,
		Template: corev1.PodTemplateSpec{
			ObjectMeta: metav1.ObjectMeta{Labels: podLabels},
			Spec:       child.PodSpec,
		},
	}

	mergedSpec, err := mergeSpec(parent.Spec.RootTemplate, childSpec)
	if err != nil {
		return nil, fmt.Errorf("childbuilder: merge template for child %q: %w", childKey, err)
	}

	dep := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      parent.ChildName(childKey),
			Namespace: parent.Namespace,
		},
		Spec: mergedSpec,
	}

	if err := controllerutil.SetControllerReference(parent, dep, b.Scheme); err != nil {
		return nil, fmt.Errorf("childbuilder: set owner reference for child %q: %w", childKey, err)
	}

	return dep, nil
}

// mergeSpec serializes root and override to JSON and applies override as an
// RFC-7396 JSON Merge Patch on top of root, then decodes the result back
// into a DeploymentSpec.
func mergeSpec(root, override appsv1.DeploymentSpec) (appsv1.DeploymentSpec, error) {
	rootDoc, err := json.Marshal(root)
	if err != nil {
		return appsv1.DeploymentSpec{}, fmt.Errorf("marshal root template: %w", err)
	}
	overrideDoc, err := json.Marshal(override)
	if err != nil {
		return appsv1.DeploymentSpec{}, fmt.Errorf("marshal child override: %w", err)
	}

	mergedDoc, err := jsonpatch.MergePatch(rootDoc, overrideDoc)
	if err != nil {
		return appsv1.DeploymentSpec{}, fmt.Errorf("merge patch: %w", err)
	}

	var merged appsv1.DeploymentSpec
	if err := json.Unmarshal(mergedDoc, &merged); err != nil {
		return appsv1.DeploymentSpec{}, fmt.Errorf("unmarshal merged spec: %w", err)
	}
	return merged, nil
}

package v1

import (
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ManagedByLabelKey uniquely identifies the (parent, child) pair that owns a
// generated Deployment. It is stamped onto both the Deployment's selector and
// its pod-template metadata so that siblings never select each other's pods
// even when their podSpecs share labels.
const ManagedByLabelKey = "multi-deployment.skystar.dev/managed-by"

// FieldManager is the field-manager identity the controller uses for every
// server-side apply write against owned children.
const FieldManager = "multi-deployment-controller"

// MultiDeployment is the Schema for the multideployments API.
//
// A MultiDeployment fans a single logical service out into several sibling
// Deployments ("children") that share a common base template but differ in
// pod specification, with replica counts computed as a weighted split of a
// single total subject to per-child minimums.
//
// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Namespaced
// +kubebuilder:subresource:status
// +kubebuilder:subresource:scale:specpath=.spec.replicas,statuspath=.status.replicas,selectorpath=.status.selector
// +kubebuilder:printcolumn:name="Replicas",type=integer,JSONPath=`.spec.replicas`
// +kubebuilder:printcolumn:name="Children",type=integer,JSONPath=`.status.replicas`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
// +genclient
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type MultiDeployment struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MultiDeploymentSpec   `json:"spec,omitempty"`
	Status MultiDeploymentStatus `json:"status,omitempty"`
}

// MultiDeploymentSpec defines the desired state of a MultiDeployment.
type MultiDeploymentSpec struct {
	// Name is the logical identifier used as the stem for child object names.
	// Child deployments are named "{name}-{childKey}".
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Replicas is the total replica budget split across children.
	// Absent is treated as zero, which pauses the MultiDeployment: every
	// child is driven to zero replicas regardless of its minReplicas.
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// RootTemplate is the base deployment template. Its selector and
	// pod-template are merged with each child's overrides; all other
	// deployment-level fields (strategy, revisionHistoryLimit, etc.) are
	// inherited as-is by every child.
	// +kubebuilder:validation:Required
	RootTemplate appsv1.DeploymentSpec `json:"rootTemplate"`

	// Children is the set of sibling deployments to fan out to, keyed by a
	// stable child identifier. Must be non-empty. Consumers iterate this
	// map in lexicographic key order so allocation output stays aligned
	// with deterministic child naming; see SortedChildKeys.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinProperties=1
	Children map[string]Child `json:"children"`
}

// Child carries the per-member overrides for one sibling deployment.
type Child struct {
	// Weight controls this child's share of the replica budget above its
	// minimum. Absent is treated as zero.
	// +optional
	// +kubebuilder:validation:Minimum=0
	Weight *int32 `json:"weight,omitempty"`

	// MinReplicas is the floor below which this child's replica count will
	// never be driven, regardless of weight. Absent is treated as zero.
	// +optional
	// +kubebuilder:validation:Minimum=0
	MinReplicas *int32 `json:"minReplicas,omitempty"`

	// PodSpec replaces the root template's pod specification in the merged
	// result for this child.
	// +kubebuilder:validation:Required
	PodSpec corev1.PodSpec `json:"podSpec"`
}

// MultiDeploymentStatus defines the observed state of a MultiDeployment.
//
// The reference reconciler does not patch this subresource today (see
// spec §7 "No status writes"); the fields below exist so the scale
// subresource has somewhere to read from and so a future extension can
// start populating them without a schema change.
type MultiDeploymentStatus struct {
	// Replicas is the replica count the scale subresource reads; the
	// reconciler does not populate it.
	// +optional
	Replicas int32 `json:"replicas,omitempty"`

	// Selector is a label-selector string for the scale subresource.
	// +optional
	Selector string `json:"selector,omitempty"`
}

// MultiDeploymentList contains a list of MultiDeployment objects.
//
// +kubebuilder:object:root=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type MultiDeploymentList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MultiDeployment `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MultiDeployment{}, &MultiDeploymentList{})
}

// SortedChildKeys returns the MultiDeployment's child keys in ascending
// lexicographic order. The reconciler builds the allocator's input vectors
// and runs its apply loop in this order so that allocation output indices
// and apply ordering line up deterministically.
func (m *MultiDeployment) SortedChildKeys() []string {
	keys := make([]string, 0, len(m.Spec.Children))
	for k := range m.Spec.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ChildName returns the name an owned Deployment for the given child key
// will carry: "{parent.name}-{childKey}".
func (m *MultiDeployment) ChildName(childKey string) string {
	return m.Spec.Name + "-" + childKey
}

// ManagedByValue returns the managed-by label value that uniquely identifies
// the (parent, child) pair for the given child key.
func (m *MultiDeployment) ManagedByValue(childKey string) string {
	return m.ChildName(childKey)
}

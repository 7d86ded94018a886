// Package v1 contains the v1 API definitions for the multi-deployment controller.
//
// The skystar.dev API group provides a single custom resource, MultiDeployment,
// which fans a logical service out into several sibling Deployments that share
// a base template but differ in pod specification and replica weight.
//
// +kubebuilder:object:generate=true
// +groupName=skystar.dev
package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "skystar.dev", Version: "v1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

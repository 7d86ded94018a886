// Command crdgen writes the MultiDeployment CustomResourceDefinition
// document to standard output.
package main

import (
	"fmt"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
)

func main() {
	doc, err := yaml.Marshal(crd())
	if err != nil {
		klog.Fatalf("marshal CRD: %v", err)
	}
	fmt.Print(string(doc))
}

func crd() *apiextensionsv1.CustomResourceDefinition {
	preserveUnknown := true

	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apiextensions.k8s.io/v1",
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: "multideployments." + mdv1.GroupVersion.Group,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: mdv1.GroupVersion.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   "multideployments",
				Singular: "multideployment",
				Kind:     "MultiDeployment",
				ListKind: "MultiDeploymentList",
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    mdv1.GroupVersion.Version,
					Served:  true,
					Storage: true,
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
						Scale: &apiextensionsv1.CustomResourceSubresourceScale{
							SpecReplicasPath:   ".spec.replicas",
							StatusReplicasPath: ".status.replicas",
							LabelSelectorPath:  strPtr(".status.selector"),
						},
					},
					AdditionalPrinterColumns: []apiextensionsv1.CustomResourceColumnDefinition{
						{Name: "Replicas", Type: "integer", JSONPath: ".spec.replicas"},
						{Name: "Children", Type: "integer", JSONPath: ".status.replicas"},
						{Name: "Age", Type: "date", JSONPath: ".metadata.creationTimestamp"},
					},
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
							Type:     "object",
							Required: []string{"spec"},
							Properties: map[string]apiextensionsv1.JSONSchemaProps{
								"spec": {
									Type:     "object",
									Required: []string{"name", "rootTemplate", "children"},
									Properties: map[string]apiextensionsv1.JSONSchemaProps{
										"name": {Type: "string"},
										"replicas": {
											Type:    "integer",
											Minimum: floatPtr(0),
										},
										"rootTemplate": {
											Type:                   "object",
											XPreserveUnknownFields: &preserveUnknown,
										},
										"children": {
											Type:          "object",
											MinProperties: int64Ptr(1),
											AdditionalProperties: &apiextensionsv1.JSONSchemaPropsOrBool{
												Schema: &apiextensionsv1.JSONSchemaProps{
													Type:     "object",
													Required: []string{"podSpec"},
													Properties: map[string]apiextensionsv1.JSONSchemaProps{
														"weight":      {Type: "integer", Minimum: floatPtr(0)},
														"minReplicas": {Type: "integer", Minimum: floatPtr(0)},
														"podSpec": {
															Type:                   "object",
															XPreserveUnknownFields: &preserveUnknown,
														},
													},
												},
											},
										},
									},
								},
								"status": {
									Type: "object",
									Properties: map[string]apiextensionsv1.JSONSchemaProps{
										"replicas": {Type: "integer"},
										"selector": {Type: "string"},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func strPtr(s string) *string   { return &s }
func floatPtr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64   { return &i }

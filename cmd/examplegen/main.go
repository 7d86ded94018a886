// Command examplegen writes a sample MultiDeployment document to standard
// output for documentation.
package main

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
)

func main() {
	md := mdv1.MultiDeployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: mdv1.GroupVersion.String(),
			Kind:       "MultiDeployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: "example-multideployment",
		},
		Spec: mdv1.MultiDeploymentSpec{
			Name:     "example-multideployment",
			Replicas: int32Ptr(3),
			RootTemplate: appsv1.DeploymentSpec{
				Template: corev1.PodTemplateSpec{
					Spec: corev1.PodSpec{
						Containers: []corev1.Container{
							{Image: "nginx:latest"},
						},
					},
				},
			},
			Children: map[string]mdv1.Child{
				"child-a": {
					Weight:      int32Ptr(70),
					MinReplicas: int32Ptr(1),
					PodSpec: corev1.PodSpec{
						Containers: []corev1.Container{
							{Image: "alpine:latest"},
						},
					},
				},
				"child-b": {
					Weight:      int32Ptr(30),
					MinReplicas: int32Ptr(1),
					PodSpec: corev1.PodSpec{
						Containers: []corev1.Container{
							{Image: "ubuntu:latest"},
						},
					},
				},
			},
		},
	}

	doc, err := yaml.Marshal(md)
	if err != nil {
		klog.Fatalf("marshal example: %v", err)
	}
	fmt.Print(string(doc))
}

func int32Ptr(v int32) *int32 { return &v }

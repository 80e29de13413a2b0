// Package v1alpha1 contains ACK EC2 resource types for Kubernetes-native AWS infrastructure management.
//
// These types enable managing VPCs, Subnets, and Security Groups using
// Kubernetes CRDs via AWS Controllers for Kubernetes (ACK). The krm
// emission target renders topologies as manifests built from these types.
//
// Example usage:
//
//	import (
//		ec2v1alpha1 "github.com/netweave/netweave/resources/k8s/ec2/v1alpha1"
//		metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
//	)
//
//	var MyVPC = ec2v1alpha1.VPC{
//		ObjectMeta: metav1.ObjectMeta{
//			Name:      "vpc1",
//			Namespace: "ack-system",
//		},
//		Spec: ec2v1alpha1.VPCSpec{
//			CIDRBlocks:         []*string{strPtr("10.0.0.0/22")},
//			EnableDNSHostnames: boolPtr(true),
//		},
//	}
package v1alpha1

package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/netweave/netweave/internal/topology"
	ec2v1alpha1 "github.com/netweave/netweave/resources/k8s/ec2/v1alpha1"
)

const (
	ackAPIVersion = "ec2.services.k8s.aws/v1alpha1"

	// DefaultNamespace is where ACK custom resources land unless overridden.
	DefaultNamespace = "ack-system"
)

// KRM renders the portable subset of the topology as ACK custom resources,
// one YAML document per resource: a VPC per network, its subnets, and the
// test instance security group. Hub constructs have no ACK counterpart and
// are skipped. Subnets reference their VPC by name so the controller resolves
// the ID at reconcile time.
func KRM(t *topology.Topology, opts Options) ([]byte, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	var docs []any
	for i := range t.Networks {
		n := &t.Networks[i]
		docs = append(docs, vpcCR(n, namespace))
		for _, tc := range n.Layout {
			for j, s := range n.TierSubnets(tc.Tier) {
				docs = append(docs, subnetCR(n, s, j+1, namespace))
			}
		}
		if sg := securityGroupCR(t, n, namespace); sg != nil {
			docs = append(docs, sg)
		}
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		raw, err := manifest(doc)
		if err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

func vpcCR(n *topology.Network, namespace string) *ec2v1alpha1.VPC {
	return &ec2v1alpha1.VPC{
		TypeMeta: metav1.TypeMeta{
			APIVersion: ackAPIVersion,
			Kind:       "VPC",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      n.Name,
			Namespace: namespace,
		},
		Spec: ec2v1alpha1.VPCSpec{
			CIDRBlocks:         []*string{strPtr(n.Block.String())},
			EnableDNSHostnames: boolPtr(true),
			EnableDNSSupport:   boolPtr(true),
			Tags: []*ec2v1alpha1.Tag{
				{Key: strPtr("Name"), Value: strPtr(n.Name)},
			},
		},
	}
}

// subnetCR leaves the availability zone unset: ACK picks one at reconcile
// time. The planned zone index rides along as a tag instead, since concrete
// zone names depend on the deployment region.
func subnetCR(n *topology.Network, s topology.Subnet, num int, namespace string) *ec2v1alpha1.Subnet {
	name := fmt.Sprintf("%s-%s-%d", n.Name, s.Tier, num)
	cr := &ec2v1alpha1.Subnet{
		TypeMeta: metav1.TypeMeta{
			APIVersion: ackAPIVersion,
			Kind:       "Subnet",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: ec2v1alpha1.SubnetSpec{
			CIDRBlock: strPtr(s.Block.String()),
			VPCRef:    vpcRef(n.Name),
			Tags: []*ec2v1alpha1.Tag{
				{Key: strPtr("Name"), Value: strPtr(name)},
				{Key: strPtr("netweave.io/tier"), Value: strPtr(string(s.Tier))},
				{Key: strPtr("netweave.io/zone"), Value: strPtr(strconv.Itoa(s.Zone))},
			},
		},
	}
	if s.Tier == topology.TierPublic {
		cr.Spec.MapPublicIPOnLaunch = boolPtr(true)
	}
	return cr
}

// securityGroupCR mirrors the CloudFormation test instance security group:
// ICMP ingress from every linked network, HTTPS and ICMP egress. Networks
// without private subnets host no instance and get no group.
func securityGroupCR(t *topology.Topology, n *topology.Network, namespace string) *ec2v1alpha1.SecurityGroup {
	if len(n.TierSubnets(topology.TierPrivate)) == 0 {
		return nil
	}

	var ingress []*ec2v1alpha1.IPPermission
	for _, peer := range peerBlocks(t, n.Name) {
		ingress = append(ingress, &ec2v1alpha1.IPPermission{
			IPProtocol: strPtr("icmp"),
			FromPort:   int64Ptr(-1),
			ToPort:     int64Ptr(-1),
			IPRanges: []*ec2v1alpha1.IPRange{
				{CIDRIP: strPtr(peer), Description: strPtr("ICMP from linked network " + peer)},
			},
		})
	}

	name := n.Name + "-instance-sg"
	return &ec2v1alpha1.SecurityGroup{
		TypeMeta: metav1.TypeMeta{
			APIVersion: ackAPIVersion,
			Kind:       "SecurityGroup",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: ec2v1alpha1.SecurityGroupSpec{
			Description:  strPtr("Test instance security group for " + n.Name),
			Name:         strPtr(name),
			VPCRef:       vpcRef(n.Name),
			IngressRules: ingress,
			EgressRules: []*ec2v1alpha1.IPPermission{
				{
					IPProtocol: strPtr("tcp"),
					FromPort:   int64Ptr(443),
					ToPort:     int64Ptr(443),
					IPRanges: []*ec2v1alpha1.IPRange{
						{CIDRIP: strPtr("0.0.0.0/0"), Description: strPtr("HTTPS to interface endpoints")},
					},
				},
				{
					IPProtocol: strPtr("icmp"),
					FromPort:   int64Ptr(-1),
					ToPort:     int64Ptr(-1),
					IPRanges: []*ec2v1alpha1.IPRange{
						{CIDRIP: strPtr("0.0.0.0/0"), Description: strPtr("ICMP reachability probes")},
					},
				},
			},
			Tags: []*ec2v1alpha1.Tag{
				{Key: strPtr("Name"), Value: strPtr(name)},
			},
		},
	}
}

// manifest serialises one custom resource as a YAML document. The resource
// is normalised through JSON first so the apimachinery json tags decide the
// field names, then the empty status and the null creation timestamp that
// metav1.ObjectMeta always marshals are stripped.
func manifest(cr any) ([]byte, error) {
	raw, err := json.Marshal(cr)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "status")
	if meta, ok := doc["metadata"].(map[string]any); ok {
		delete(meta, "creationTimestamp")
	}
	return yaml.Marshal(doc)
}

func vpcRef(name string) *ec2v1alpha1.AWSResourceReferenceWrapper {
	return &ec2v1alpha1.AWSResourceReferenceWrapper{
		From: &ec2v1alpha1.AWSResourceReference{Name: strPtr(name)},
	}
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(i int64) *int64 {
	return &i
}

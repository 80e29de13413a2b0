package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func manifests(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, doc := range strings.Split(string(raw), "---\n") {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
		out = append(out, m)
	}
	return out
}

func findManifest(t *testing.T, docs []map[string]any, kind, name string) map[string]any {
	t.Helper()
	for _, m := range docs {
		meta, _ := m["metadata"].(map[string]any)
		if m["kind"] == kind && meta["name"] == name {
			return m
		}
	}
	t.Fatalf("manifest %s/%s not found", kind, name)
	return nil
}

func TestKRM_ManifestInventory(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{})
	require.NoError(t, err)

	docs := manifests(t, raw)
	require.Len(t, docs, 16)

	kinds := make(map[string]int)
	for _, m := range docs {
		kind, _ := m["kind"].(string)
		kinds[kind]++
	}
	assert.Equal(t, 2, kinds["VPC"])
	assert.Equal(t, 12, kinds["Subnet"])
	assert.Equal(t, 2, kinds["SecurityGroup"])

	findManifest(t, docs, "VPC", "vpc1")
	findManifest(t, docs, "VPC", "vpc2")
	findManifest(t, docs, "Subnet", "vpc1-public-1")
	findManifest(t, docs, "Subnet", "vpc2-gateway-attachment-2")
	findManifest(t, docs, "SecurityGroup", "vpc1-instance-sg")
}

func TestKRM_VPCManifest(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{})
	require.NoError(t, err)

	vpc := findManifest(t, manifests(t, raw), "VPC", "vpc1")
	assert.Equal(t, "ec2.services.k8s.aws/v1alpha1", vpc["apiVersion"])

	meta := vpc["metadata"].(map[string]any)
	assert.Equal(t, "ack-system", meta["namespace"])
	assert.NotContains(t, meta, "creationTimestamp")
	assert.NotContains(t, vpc, "status")

	spec := vpc["spec"].(map[string]any)
	assert.Equal(t, []any{"10.0.0.0/22"}, spec["cidrBlocks"])
	assert.Equal(t, true, spec["enableDNSHostnames"])
	assert.Equal(t, true, spec["enableDNSSupport"])
}

func TestKRM_SubnetManifest(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{})
	require.NoError(t, err)
	docs := manifests(t, raw)

	public := findManifest(t, docs, "Subnet", "vpc1-public-1")
	spec := public["spec"].(map[string]any)
	assert.Equal(t, "10.0.0.0/26", spec["cidrBlock"])
	assert.Equal(t, true, spec["mapPublicIPOnLaunch"])

	vpcRef := spec["vpcRef"].(map[string]any)
	from := vpcRef["from"].(map[string]any)
	assert.Equal(t, "vpc1", from["name"])

	tags, ok := spec["tags"].([]any)
	require.True(t, ok)
	assert.Contains(t, tags, map[string]any{"key": "netweave.io/tier", "value": "public"})
	assert.Contains(t, tags, map[string]any{"key": "netweave.io/zone", "value": "0"})

	private := findManifest(t, docs, "Subnet", "vpc1-private-2")
	spec = private["spec"].(map[string]any)
	assert.Equal(t, "10.0.1.64/26", spec["cidrBlock"])
	assert.NotContains(t, spec, "mapPublicIPOnLaunch")
	assert.Contains(t, spec["tags"], map[string]any{"key": "netweave.io/zone", "value": "1"})
}

func TestKRM_SecurityGroupManifest(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{})
	require.NoError(t, err)

	sg := findManifest(t, manifests(t, raw), "SecurityGroup", "vpc1-instance-sg")
	spec := sg["spec"].(map[string]any)
	assert.Equal(t, "Test instance security group for vpc1", spec["description"])

	ingress, ok := spec["ingressRules"].([]any)
	require.True(t, ok)
	require.Len(t, ingress, 1)
	rule := ingress[0].(map[string]any)
	assert.Equal(t, "icmp", rule["ipProtocol"])
	assert.Equal(t, -1, rule["fromPort"])
	ranges := rule["ipRanges"].([]any)
	require.Len(t, ranges, 1)
	assert.Equal(t, "10.0.4.0/22", ranges[0].(map[string]any)["cidrIP"])

	egress, ok := spec["egressRules"].([]any)
	require.True(t, ok)
	assert.Len(t, egress, 2)
}

func TestKRM_SkipsHub(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "TransitGateway")
}

func TestKRM_NamespaceOption(t *testing.T) {
	raw, err := KRM(dualNetworkTopology(t), Options{Namespace: "tenant-a"})
	require.NoError(t, err)

	for _, m := range manifests(t, raw) {
		meta := m["metadata"].(map[string]any)
		assert.Equal(t, "tenant-a", meta["namespace"])
	}
}

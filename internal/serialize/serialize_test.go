package serialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSubnet struct {
	VpcId               any    `json:"VpcId,omitempty"`
	CidrBlock           string `json:"CidrBlock,omitempty"`
	AvailabilityZone    any    `json:"AvailabilityZone,omitempty"`
	MapPublicIpOnLaunch bool   `json:"MapPublicIpOnLaunch,omitempty"`
	Tags                []tag  `json:"Tags,omitempty"`
}

type tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

type testRef struct {
	LogicalName string
}

func (r testRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": r.LogicalName})
}

type testEndpoint struct {
	VpcId       any       `json:"VpcId,omitempty"`
	ServiceName string    `json:"ServiceName,omitempty"`
	DnsOptions  *testOpts `json:"DnsOptions,omitempty"`
}

type testOpts struct {
	DnsRecordIpType string `json:"DnsRecordIpType,omitempty"`
}

func TestProperties_SimpleStruct(t *testing.T) {
	subnet := testSubnet{
		CidrBlock: "10.0.0.0/26",
	}

	props, err := Properties(subnet)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.0/26", props["CidrBlock"])
	assert.NotContains(t, props, "Tags")
	assert.NotContains(t, props, "VpcId")
	assert.NotContains(t, props, "MapPublicIpOnLaunch")
}

func TestProperties_IntrinsicMarshaler(t *testing.T) {
	subnet := testSubnet{
		VpcId:     testRef{LogicalName: "VPC1"},
		CidrBlock: "10.0.0.0/26",
	}

	props, err := Properties(subnet)
	require.NoError(t, err)

	ref := props["VpcId"].(map[string]any)
	assert.Equal(t, "VPC1", ref["Ref"])
}

func TestProperties_NestedStruct(t *testing.T) {
	endpoint := testEndpoint{
		ServiceName: "com.amazonaws.us-east-1.ssm",
		DnsOptions:  &testOpts{DnsRecordIpType: "ipv4"},
	}

	props, err := Properties(endpoint)
	require.NoError(t, err)

	opts := props["DnsOptions"].(map[string]any)
	assert.Equal(t, "ipv4", opts["DnsRecordIpType"])
}

func TestProperties_Slice(t *testing.T) {
	subnet := testSubnet{
		CidrBlock: "10.0.0.0/26",
		Tags: []tag{
			{Key: "Name", Value: "vpc1-public-1"},
			{Key: "Tier", Value: "public"},
		},
	}

	props, err := Properties(subnet)
	require.NoError(t, err)

	tags := props["Tags"].([]any)
	require.Len(t, tags, 2)

	tag0 := tags[0].(map[string]any)
	assert.Equal(t, "Name", tag0["Key"])
	assert.Equal(t, "vpc1-public-1", tag0["Value"])
}

func TestProperties_BoolEmittedWhenTrue(t *testing.T) {
	subnet := testSubnet{
		CidrBlock:           "10.0.0.0/26",
		MapPublicIpOnLaunch: true,
	}

	props, err := Properties(subnet)
	require.NoError(t, err)

	assert.Equal(t, true, props["MapPublicIpOnLaunch"])
}

func TestProperties_OmitsZeroValues(t *testing.T) {
	props, err := Properties(testSubnet{})
	require.NoError(t, err)

	assert.Empty(t, props)
}

func TestProperties_Pointer(t *testing.T) {
	props, err := Properties(&testSubnet{CidrBlock: "10.0.1.0/26"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.1.0/26", props["CidrBlock"])
}

func TestProperties_NonStruct(t *testing.T) {
	props, err := Properties("not a struct")
	require.NoError(t, err)
	assert.Nil(t, props)
}

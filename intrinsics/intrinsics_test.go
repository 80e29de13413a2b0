package intrinsics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	ref := Ref{LogicalName: "VPC1"}
	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ref": "VPC1"}`, string(data))
}

func TestGetAtt_MarshalJSON(t *testing.T) {
	getAtt := GetAtt{LogicalName: "VPC1TransitGatewayAttachment", Attribute: "Id"}
	data, err := json.Marshal(getAtt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAtt": ["VPC1TransitGatewayAttachment", "Id"]}`, string(data))
}

func TestSub_MarshalJSON(t *testing.T) {
	sub := Sub{String: "${AWS::StackName}-vpc1-public-0"}
	data, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Sub": "${AWS::StackName}-vpc1-public-0"}`, string(data))
}

func TestSubWithMap_MarshalJSON(t *testing.T) {
	sub := SubWithMap{
		String: "${Network}-endpoint",
		Variables: map[string]any{
			"Network": Ref{LogicalName: "VPC1"},
		},
	}
	data, err := json.Marshal(sub)
	require.NoError(t, err)
	// The nested Ref should also be serialized correctly
	assert.Contains(t, string(data), `"Fn::Sub"`)
	assert.Contains(t, string(data), `"${Network}-endpoint"`)
}

func TestJoin_MarshalJSON(t *testing.T) {
	join := Join{Delimiter: ",", Values: []any{"a", "b", "c"}}
	data, err := json.Marshal(join)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Join": [",", ["a", "b", "c"]]}`, string(data))
}

func TestSelect_MarshalJSON(t *testing.T) {
	sel := Select{Index: 0, List: GetAZs{Region: ""}}
	data, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Fn::Select"`)
	assert.Contains(t, string(data), `"Fn::GetAZs"`)
}

func TestGetAZs_MarshalJSON(t *testing.T) {
	azs := GetAZs{Region: ""}
	data, err := json.Marshal(azs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAZs": ""}`, string(data))

	azs = GetAZs{Region: "us-east-1"}
	data, err = json.Marshal(azs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAZs": "us-east-1"}`, string(data))
}

func TestSplit_MarshalJSON(t *testing.T) {
	split := Split{Delimiter: ",", Source: "a,b,c"}
	data, err := json.Marshal(split)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Split": [",", "a,b,c"]}`, string(data))
}

func TestCidr_MarshalJSON(t *testing.T) {
	cidr := Cidr{IPBlock: "10.0.0.0/22", Count: 6, CidrBits: 6}
	data, err := json.Marshal(cidr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Cidr": ["10.0.0.0/22", 6, 6]}`, string(data))
}

func TestImportValue_MarshalJSON(t *testing.T) {
	imp := ImportValue{ExportName: "SharedVPC"}
	data, err := json.Marshal(imp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::ImportValue": "SharedVPC"}`, string(data))
}

func TestTag_MarshalJSON(t *testing.T) {
	tag := Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-vpc1"}}
	data, err := json.Marshal(tag)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Key":"Name"`)
	assert.Contains(t, string(data), `"Fn::Sub"`)
}

func TestPseudoParameters(t *testing.T) {
	tests := []struct {
		name     string
		param    Ref
		expected string
	}{
		{"AWS_REGION", AWS_REGION, `{"Ref": "AWS::Region"}`},
		{"AWS_ACCOUNT_ID", AWS_ACCOUNT_ID, `{"Ref": "AWS::AccountId"}`},
		{"AWS_STACK_NAME", AWS_STACK_NAME, `{"Ref": "AWS::StackName"}`},
		{"AWS_STACK_ID", AWS_STACK_ID, `{"Ref": "AWS::StackId"}`},
		{"AWS_PARTITION", AWS_PARTITION, `{"Ref": "AWS::Partition"}`},
		{"AWS_URL_SUFFIX", AWS_URL_SUFFIX, `{"Ref": "AWS::URLSuffix"}`},
		{"AWS_NO_VALUE", AWS_NO_VALUE, `{"Ref": "AWS::NoValue"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.param)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

package ec2

// VPCEndpoint represents an AWS::EC2::VPCEndpoint resource.
// Interface endpoints place an ENI in each listed subnet; gateway
// endpoints attach to route tables instead.
type VPCEndpoint struct {
	ServiceName       any    `json:"ServiceName,omitempty"`
	VpcId             any    `json:"VpcId,omitempty"`
	VpcEndpointType   string `json:"VpcEndpointType,omitempty"`
	SubnetIds         []any  `json:"SubnetIds,omitempty"`
	SecurityGroupIds  []any  `json:"SecurityGroupIds,omitempty"`
	RouteTableIds     []any  `json:"RouteTableIds,omitempty"`
	PrivateDnsEnabled bool   `json:"PrivateDnsEnabled,omitempty"`
	PolicyDocument    any    `json:"PolicyDocument,omitempty"`
}

func (r VPCEndpoint) ResourceType() string { return "AWS::EC2::VPCEndpoint" }

package ec2

// EIP represents an AWS::EC2::EIP resource.
// The AllocationId attribute is referenced via Fn::GetAtt when binding
// the address to a NAT gateway.
type EIP struct {
	Domain string `json:"Domain,omitempty"`
	Tags   []any  `json:"Tags,omitempty"`
}

func (r EIP) ResourceType() string { return "AWS::EC2::EIP" }

// NatGateway represents an AWS::EC2::NatGateway resource.
type NatGateway struct {
	AllocationId     any    `json:"AllocationId,omitempty"`
	SubnetId         any    `json:"SubnetId,omitempty"`
	ConnectivityType string `json:"ConnectivityType,omitempty"`
	Tags             []any  `json:"Tags,omitempty"`
}

func (r NatGateway) ResourceType() string { return "AWS::EC2::NatGateway" }

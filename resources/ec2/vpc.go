package ec2

// VPC represents an AWS::EC2::VPC resource.
type VPC struct {
	CidrBlock          string `json:"CidrBlock,omitempty"`
	EnableDnsSupport   bool   `json:"EnableDnsSupport,omitempty"`
	EnableDnsHostnames bool   `json:"EnableDnsHostnames,omitempty"`
	InstanceTenancy    string `json:"InstanceTenancy,omitempty"`
	Tags               []any  `json:"Tags,omitempty"`
}

func (r VPC) ResourceType() string { return "AWS::EC2::VPC" }

// Subnet represents an AWS::EC2::Subnet resource.
type Subnet struct {
	VpcId               any    `json:"VpcId,omitempty"`
	CidrBlock           string `json:"CidrBlock,omitempty"`
	AvailabilityZone    any    `json:"AvailabilityZone,omitempty"`
	MapPublicIpOnLaunch bool   `json:"MapPublicIpOnLaunch,omitempty"`
	Tags                []any  `json:"Tags,omitempty"`
}

func (r Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// InternetGateway represents an AWS::EC2::InternetGateway resource.
type InternetGateway struct {
	Tags []any `json:"Tags,omitempty"`
}

func (r InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment represents an AWS::EC2::VPCGatewayAttachment resource.
// Exactly one of InternetGatewayId or VpnGatewayId must be set.
type VPCGatewayAttachment struct {
	VpcId             any `json:"VpcId,omitempty"`
	InternetGatewayId any `json:"InternetGatewayId,omitempty"`
	VpnGatewayId      any `json:"VpnGatewayId,omitempty"`
}

func (r VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }

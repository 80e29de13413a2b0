package ec2

// TransitGateway represents an AWS::EC2::TransitGateway resource.
type TransitGateway struct {
	AmazonSideAsn                int64  `json:"AmazonSideAsn,omitempty"`
	AutoAcceptSharedAttachments  string `json:"AutoAcceptSharedAttachments,omitempty"`
	DefaultRouteTableAssociation string `json:"DefaultRouteTableAssociation,omitempty"`
	DefaultRouteTablePropagation string `json:"DefaultRouteTablePropagation,omitempty"`
	Description                  string `json:"Description,omitempty"`
	DnsSupport                   string `json:"DnsSupport,omitempty"`
	VpnEcmpSupport               string `json:"VpnEcmpSupport,omitempty"`
	Tags                         []any  `json:"Tags,omitempty"`
}

func (r TransitGateway) ResourceType() string { return "AWS::EC2::TransitGateway" }

// TransitGatewayAttachment represents an AWS::EC2::TransitGatewayAttachment resource.
// SubnetIds names one subnet per availability zone in the attached VPC.
type TransitGatewayAttachment struct {
	TransitGatewayId any   `json:"TransitGatewayId,omitempty"`
	VpcId            any   `json:"VpcId,omitempty"`
	SubnetIds        []any `json:"SubnetIds,omitempty"`
	Tags             []any `json:"Tags,omitempty"`
}

func (r TransitGatewayAttachment) ResourceType() string {
	return "AWS::EC2::TransitGatewayAttachment"
}

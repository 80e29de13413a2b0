package ec2

// SecurityGroup represents an AWS::EC2::SecurityGroup resource with
// inline ingress and egress rules.
type SecurityGroup struct {
	GroupDescription     string                  `json:"GroupDescription,omitempty"`
	GroupName            any                     `json:"GroupName,omitempty"`
	VpcId                any                     `json:"VpcId,omitempty"`
	SecurityGroupIngress []SecurityGroup_Ingress `json:"SecurityGroupIngress,omitempty"`
	SecurityGroupEgress  []SecurityGroup_Egress  `json:"SecurityGroupEgress,omitempty"`
	Tags                 []any                   `json:"Tags,omitempty"`
}

func (r SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }

// SecurityGroup_Ingress is an inline ingress rule.
// FromPort and ToPort are -1 for protocols without ports (ICMP all types).
type SecurityGroup_Ingress struct {
	IpProtocol            string `json:"IpProtocol,omitempty"`
	FromPort              int    `json:"FromPort,omitempty"`
	ToPort                int    `json:"ToPort,omitempty"`
	CidrIp                any    `json:"CidrIp,omitempty"`
	SourceSecurityGroupId any    `json:"SourceSecurityGroupId,omitempty"`
	Description           string `json:"Description,omitempty"`
}

// SecurityGroup_Egress is an inline egress rule.
type SecurityGroup_Egress struct {
	IpProtocol                 string `json:"IpProtocol,omitempty"`
	FromPort                   int    `json:"FromPort,omitempty"`
	ToPort                     int    `json:"ToPort,omitempty"`
	CidrIp                     any    `json:"CidrIp,omitempty"`
	DestinationSecurityGroupId any    `json:"DestinationSecurityGroupId,omitempty"`
	Description                string `json:"Description,omitempty"`
}

package ec2

// Instance represents an AWS::EC2::Instance resource.
type Instance struct {
	ImageId            any   `json:"ImageId,omitempty"`
	InstanceType       any   `json:"InstanceType,omitempty"`
	SubnetId           any   `json:"SubnetId,omitempty"`
	SecurityGroupIds   []any `json:"SecurityGroupIds,omitempty"`
	IamInstanceProfile any   `json:"IamInstanceProfile,omitempty"`
	UserData           any   `json:"UserData,omitempty"`
	Tags               []any `json:"Tags,omitempty"`
}

func (r Instance) ResourceType() string { return "AWS::EC2::Instance" }

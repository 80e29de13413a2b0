// Package ec2 contains typed CloudFormation EC2 resource declarations.
//
// Each type maps to one AWS::EC2::* resource and serializes its fields
// under CloudFormation property names. Fields that accept references to
// other resources are typed any so they can carry intrinsic functions:
//
//	subnet := ec2.Subnet{
//		VpcId:            Ref{LogicalName: "Vpc1"},
//		CidrBlock:        "10.0.0.0/26",
//		AvailabilityZone: Select{Index: 0, List: GetAZs{}},
//	}
package ec2

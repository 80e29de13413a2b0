// Command schemacheck audits the typed resource structs against the
// CloudFormation Resource Specification.
//
// The resource packages declare a deliberate subset of each type's
// properties, so properties the structs leave out are only reported.
// Fields the specification does not know about are bugs (usually typos)
// and fail the audit, as do GetAtt attributes the emitter reads that the
// specification does not publish.
//
// Usage:
//
//	go run ./schemacheck             # Audit against the cached spec
//	go run ./schemacheck --force     # Refetch the spec first
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"sort"

	"github.com/lex00/cloudformation-schema-go/spec"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/resources/ec2"
	"github.com/netweave/netweave/resources/iam"
)

var forceFetch = false

func init() {
	flag.BoolVar(&forceFetch, "force", false, "Refetch the spec even if cached")
}

// checkedResources lists every resource struct the emitter declares, plus
// the GetAtt attributes read from each.
var checkedResources = []struct {
	resource   netweave.Resource
	attributes []string
}{
	{ec2.VPC{}, nil},
	{ec2.Subnet{}, nil},
	{ec2.InternetGateway{}, nil},
	{ec2.VPCGatewayAttachment{}, nil},
	{ec2.RouteTable{}, nil},
	{ec2.Route{}, nil},
	{ec2.SubnetRouteTableAssociation{}, nil},
	{ec2.EIP{}, []string{"AllocationId"}},
	{ec2.NatGateway{}, nil},
	{ec2.TransitGateway{}, nil},
	{ec2.TransitGatewayAttachment{}, nil},
	{ec2.SecurityGroup{}, nil},
	{ec2.VPCEndpoint{}, nil},
	{ec2.Instance{}, []string{"PrivateIp"}},
	{iam.Role{}, nil},
	{iam.InstanceProfile{}, nil},
}

// checkedPropertyTypes lists the nested property structs, keyed by their
// qualified specification name.
var checkedPropertyTypes = []struct {
	cfType string
	value  any
}{
	{"AWS::EC2::SecurityGroup.Ingress", ec2.SecurityGroup_Ingress{}},
	{"AWS::EC2::SecurityGroup.Egress", ec2.SecurityGroup_Egress{}},
}

func main() {
	flag.Parse()

	fmt.Println("Fetching CloudFormation Resource Specification...")
	cfnSpec, err := spec.FetchSpec(&spec.FetchOptions{Force: forceFetch})
	if err != nil {
		log.Fatalf("fetching spec: %v", err)
	}
	fmt.Printf("Spec version: %s\n\n", cfnSpec.ResourceSpecificationVersion)

	problems := 0
	for _, c := range checkedResources {
		problems += checkResource(cfnSpec, c.resource, c.attributes)
	}
	for _, c := range checkedPropertyTypes {
		problems += checkPropertyType(cfnSpec, c.cfType, c.value)
	}

	if problems > 0 {
		fmt.Printf("\n%d problems found\n", problems)
		os.Exit(1)
	}
	fmt.Println("All resource structs match the specification.")
}

// checkResource verifies one resource struct against its spec definition
// and returns the number of problems found.
func checkResource(cfnSpec *spec.Spec, res netweave.Resource, attributes []string) int {
	cfType := res.ResourceType()
	resDef, ok := cfnSpec.ResourceTypes[cfType]
	if !ok {
		fmt.Printf("%s: not in the specification\n", cfType)
		return 1
	}

	problems := checkFields(cfType, reflect.TypeOf(res), resDef.Properties)

	for _, attr := range attributes {
		if _, ok := resDef.Attributes[attr]; !ok {
			fmt.Printf("%s: attribute %s is not in the specification\n", cfType, attr)
			problems++
		}
	}

	return problems
}

// checkPropertyType verifies one nested property struct.
func checkPropertyType(cfnSpec *spec.Spec, cfType string, value any) int {
	propDef, ok := cfnSpec.PropertyTypes[cfType]
	if !ok {
		fmt.Printf("%s: not in the specification\n", cfType)
		return 1
	}
	return checkFields(cfType, reflect.TypeOf(value), propDef.Properties)
}

// checkFields compares struct field names with specification properties.
// Unknown fields are problems; undeclared properties are only reported.
func checkFields(cfType string, rt reflect.Type, properties map[string]spec.Property) int {
	problems := 0
	declared := make(map[string]bool, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Name
		declared[name] = true
		if _, ok := properties[name]; !ok {
			fmt.Printf("%s: field %s is not a specification property\n", cfType, name)
			problems++
		}
	}

	var missing []string
	for name, prop := range properties {
		if prop.Required && !declared[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		fmt.Printf("%s: required property %s not declared\n", cfType, name)
	}

	return problems
}

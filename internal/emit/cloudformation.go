package emit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/serialize"
	"github.com/netweave/netweave/internal/topology"
	"github.com/netweave/netweave/intrinsics"
	"github.com/netweave/netweave/resources/ec2"
	"github.com/netweave/netweave/resources/iam"
)

const (
	defaultDescription = "Multi-VPC network topology"

	// amiParameterPath resolves the latest Amazon Linux 2023 AMI at deploy time.
	amiParameterPath = "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-default-x86_64"

	ssmManagedPolicyArn = "arn:aws:iam::aws:policy/AmazonSSMManagedInstanceCore"
)

// CloudFormation renders the topology as a CloudFormation template: one VPC
// per network with its tiered subnets, internet and NAT egress, SSM interface
// endpoints with a managed test instance, and a transit gateway joining the
// linked networks.
func CloudFormation(t *topology.Topology, opts Options) (*netweave.Template, error) {
	description := opts.Description
	if description == "" {
		description = defaultDescription
	}

	b := &cfBuilder{
		topo: t,
		tmpl: &netweave.Template{
			AWSTemplateFormatVersion: "2010-09-09",
			Description:              description,
			Resources:                make(map[string]netweave.ResourceDef),
		},
	}

	plans := make([]*networkPlan, 0, len(t.Networks))
	for i := range t.Networks {
		plan, err := b.network(&t.Networks[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := b.hub(plans); err != nil {
		return nil, err
	}
	if err := b.instanceSupport(plans); err != nil {
		return nil, err
	}
	b.outputs(plans)

	return b.tmpl, nil
}

// networkPlan carries the logical IDs allocated for one network so the hub
// and output sections can reference them.
type networkPlan struct {
	net    *topology.Network
	prefix string
	attach string                     // gateway attachment ID, empty without an IGW
	subnet map[topology.Tier][]string // logical IDs in allocation order
	zoneRT []string                   // private route table ID per zone, empty slots unused
	peers  []string                   // CIDRs of linked networks

	instance bool
}

type cfBuilder struct {
	topo *topology.Topology
	tmpl *netweave.Template
}

func (b *cfBuilder) add(name string, res netweave.Resource, deps ...string) error {
	props, err := serialize.Properties(res)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", name, err)
	}
	def := netweave.ResourceDef{Type: res.ResourceType(), Properties: props}
	if len(deps) > 0 {
		def.DependsOn = deps
	}
	b.tmpl.Resources[name] = def
	return nil
}

// network emits every per-network resource and records the logical IDs.
func (b *cfBuilder) network(n *topology.Network) (*networkPlan, error) {
	p := &networkPlan{
		net:    n,
		prefix: logicalPrefix(n.Name),
		subnet: make(map[topology.Tier][]string),
		zoneRT: make([]string, n.Zones),
		peers:  peerBlocks(b.topo, n.Name),
	}

	if err := b.add(p.prefix, ec2.VPC{
		CidrBlock:          n.Block.String(),
		EnableDnsSupport:   true,
		EnableDnsHostnames: true,
		Tags:               nameTag(n.Name),
	}); err != nil {
		return nil, err
	}

	public := n.TierSubnets(topology.TierPublic)
	if len(public) > 0 {
		igw := p.prefix + "InternetGateway"
		p.attach = p.prefix + "GatewayAttachment"
		if err := b.add(igw, ec2.InternetGateway{Tags: nameTag(n.Name + "-igw")}); err != nil {
			return nil, err
		}
		if err := b.add(p.attach, ec2.VPCGatewayAttachment{
			VpcId:             ref(p.prefix),
			InternetGatewayId: ref(igw),
		}); err != nil {
			return nil, err
		}
	}

	if err := b.subnets(p); err != nil {
		return nil, err
	}
	if err := b.routing(p); err != nil {
		return nil, err
	}
	if err := b.endpoints(p); err != nil {
		return nil, err
	}
	if err := b.instance(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *cfBuilder) subnets(p *networkPlan) error {
	n := p.net
	for _, tc := range n.Layout {
		subs := n.TierSubnets(tc.Tier)
		ids := make([]string, len(subs))
		for j, s := range subs {
			ids[j] = p.prefix + tierLabel(tc.Tier) + strconv.Itoa(j+1)
			err := b.add(ids[j], ec2.Subnet{
				VpcId:               ref(p.prefix),
				CidrBlock:           s.Block.String(),
				AvailabilityZone:    intrinsics.Select{Index: s.Zone, List: intrinsics.GetAZs{}},
				MapPublicIpOnLaunch: tc.Tier == topology.TierPublic,
				Tags:                nameTag(fmt.Sprintf("%s-%s-%d", n.Name, tc.Tier, j+1)),
			})
			if err != nil {
				return err
			}
		}
		p.subnet[tc.Tier] = ids
	}
	return nil
}

// routing emits the public route table with its IGW default route, one
// private route table per zone with a NAT default route where a public
// subnet can host the NAT, and all subnet associations. Gateway-attachment
// subnets share the private route tables so hub routes apply to them too.
func (b *cfBuilder) routing(p *networkPlan) error {
	n := p.net

	public := n.TierSubnets(topology.TierPublic)
	if len(public) > 0 {
		rt := p.prefix + "PublicRouteTable"
		if err := b.add(rt, ec2.RouteTable{VpcId: ref(p.prefix), Tags: nameTag(n.Name + "-public-rt")}); err != nil {
			return err
		}
		err := b.add(p.prefix+"PublicRoute", ec2.Route{
			RouteTableId:         ref(rt),
			DestinationCidrBlock: "0.0.0.0/0",
			GatewayId:            ref(p.prefix + "InternetGateway"),
		}, p.attach)
		if err != nil {
			return err
		}
		for _, id := range p.subnet[topology.TierPublic] {
			err := b.add(id+"RouteTableAssociation", ec2.SubnetRouteTableAssociation{
				SubnetId:     ref(id),
				RouteTableId: ref(rt),
			})
			if err != nil {
				return err
			}
		}
	}

	private := n.TierSubnets(topology.TierPrivate)
	gateway := n.TierSubnets(topology.TierGatewayAttachment)

	for zone := 0; zone < n.Zones; zone++ {
		if !zoneHasSubnet(private, zone) && !zoneHasSubnet(gateway, zone) {
			continue
		}
		num := strconv.Itoa(zone + 1)
		rt := p.prefix + "PrivateRouteTable" + num
		p.zoneRT[zone] = rt
		if err := b.add(rt, ec2.RouteTable{VpcId: ref(p.prefix), Tags: nameTag(fmt.Sprintf("%s-private-rt-%d", n.Name, zone+1))}); err != nil {
			return err
		}

		natSubnet, ok := firstInZone(p.subnet[topology.TierPublic], public, zone)
		if !ok {
			continue
		}
		eip := p.prefix + "NatEIP" + num
		nat := p.prefix + "NatGateway" + num
		if err := b.add(eip, ec2.EIP{Domain: "vpc", Tags: nameTag(fmt.Sprintf("%s-nat-eip-%d", n.Name, zone+1))}, p.attach); err != nil {
			return err
		}
		err := b.add(nat, ec2.NatGateway{
			AllocationId: getAtt(eip, "AllocationId"),
			SubnetId:     ref(natSubnet),
			Tags:         nameTag(fmt.Sprintf("%s-nat-%d", n.Name, zone+1)),
		})
		if err != nil {
			return err
		}
		err = b.add(p.prefix+"PrivateRoute"+num, ec2.Route{
			RouteTableId:         ref(rt),
			DestinationCidrBlock: "0.0.0.0/0",
			NatGatewayId:         ref(nat),
		})
		if err != nil {
			return err
		}
	}

	for _, tier := range []topology.Tier{topology.TierPrivate, topology.TierGatewayAttachment} {
		subs := n.TierSubnets(tier)
		for j, id := range p.subnet[tier] {
			rt := p.zoneRT[subs[j].Zone]
			if rt == "" {
				continue
			}
			err := b.add(id+"RouteTableAssociation", ec2.SubnetRouteTableAssociation{
				SubnetId:     ref(id),
				RouteTableId: ref(rt),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// endpoints emits the SSM interface endpoints that let the managed instance
// register without internet access, plus their security group.
func (b *cfBuilder) endpoints(p *networkPlan) error {
	n := p.net
	private := n.TierSubnets(topology.TierPrivate)
	if len(private) == 0 {
		return nil
	}

	sg := p.prefix + "EndpointSecurityGroup"
	err := b.add(sg, ec2.SecurityGroup{
		GroupDescription: "HTTPS access to interface endpoints in " + n.Name,
		VpcId:            ref(p.prefix),
		SecurityGroupIngress: []ec2.SecurityGroup_Ingress{
			{
				IpProtocol:  "tcp",
				FromPort:    443,
				ToPort:      443,
				CidrIp:      n.Block.String(),
				Description: "HTTPS from the VPC",
			},
		},
		Tags: nameTag(n.Name + "-endpoint-sg"),
	})
	if err != nil {
		return err
	}

	subnetIDs := onePerZone(p.subnet[topology.TierPrivate], private, n.Zones)
	services := []struct {
		id      string
		service string
	}{
		{"SSMEndpoint", "ssm"},
		{"SSMMessagesEndpoint", "ssmmessages"},
		{"EC2MessagesEndpoint", "ec2messages"},
	}
	for _, svc := range services {
		err := b.add(p.prefix+svc.id, ec2.VPCEndpoint{
			ServiceName:       intrinsics.Sub{String: "com.amazonaws.${AWS::Region}." + svc.service},
			VpcId:             ref(p.prefix),
			VpcEndpointType:   "Interface",
			SubnetIds:         subnetIDs,
			SecurityGroupIds:  []any{ref(sg)},
			PrivateDnsEnabled: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// instance emits the per-network test instance with its security group.
// The instance lands in the first private subnet and is reached through SSM
// only; ICMP ingress from every linked network makes cross-network pings
// meaningful.
func (b *cfBuilder) instance(p *networkPlan) error {
	n := p.net
	privateIDs := p.subnet[topology.TierPrivate]
	if len(privateIDs) == 0 {
		return nil
	}

	sg := p.prefix + "EC2SecurityGroup"
	ingress := make([]ec2.SecurityGroup_Ingress, 0, len(p.peers))
	for _, peer := range p.peers {
		ingress = append(ingress, ec2.SecurityGroup_Ingress{
			IpProtocol:  "icmp",
			FromPort:    -1,
			ToPort:      -1,
			CidrIp:      peer,
			Description: "ICMP from linked network " + peer,
		})
	}
	err := b.add(sg, ec2.SecurityGroup{
		GroupDescription:     "Test instance security group for " + n.Name,
		VpcId:                ref(p.prefix),
		SecurityGroupIngress: ingress,
		SecurityGroupEgress: []ec2.SecurityGroup_Egress{
			{
				IpProtocol:  "tcp",
				FromPort:    443,
				ToPort:      443,
				CidrIp:      "0.0.0.0/0",
				Description: "HTTPS to interface endpoints",
			},
			{
				IpProtocol:  "icmp",
				FromPort:    -1,
				ToPort:      -1,
				CidrIp:      "0.0.0.0/0",
				Description: "ICMP reachability probes",
			},
		},
		Tags: nameTag(n.Name + "-instance-sg"),
	})
	if err != nil {
		return err
	}

	err = b.add(p.prefix+"EC2Instance", ec2.Instance{
		ImageId:            ref("LatestAmiId"),
		InstanceType:       ref("InstanceType"),
		SubnetId:           ref(privateIDs[0]),
		SecurityGroupIds:   []any{ref(sg)},
		IamInstanceProfile: ref("EC2InstanceProfile"),
		Tags:               nameTag(n.Name + "-instance"),
	})
	if err != nil {
		return err
	}
	p.instance = true
	return nil
}

// hub emits the transit gateway, one attachment per linked network, and the
// cross-network routes in every private route table, both directions per
// link. Without links the section is absent entirely.
func (b *cfBuilder) hub(plans []*networkPlan) error {
	if len(b.topo.Links) == 0 {
		return nil
	}

	err := b.add("TransitGateway", ec2.TransitGateway{
		Description:                  "Hub joining the topology's networks",
		DefaultRouteTableAssociation: "enable",
		DefaultRouteTablePropagation: "enable",
		DnsSupport:                   "enable",
		Tags:                         nameTag("tgw"),
	})
	if err != nil {
		return err
	}

	byName := make(map[string]*networkPlan, len(plans))
	for _, p := range plans {
		byName[p.net.Name] = p
	}

	for _, p := range plans {
		if !linked(b.topo, p.net.Name) {
			continue
		}
		err := b.add("TGWAttachment"+p.prefix, ec2.TransitGatewayAttachment{
			TransitGatewayId: ref("TransitGateway"),
			VpcId:            ref(p.prefix),
			SubnetIds:        attachmentSubnets(p),
			Tags:             nameTag(p.net.Name + "-tgw-attachment"),
		})
		if err != nil {
			return err
		}
	}

	// Repeated or reversed link declarations collapse to one route set.
	routed := make(map[string]bool)
	for _, l := range b.topo.Links {
		if l.From == l.To || routed[l.From+"|"+l.To] {
			continue
		}
		routed[l.From+"|"+l.To] = true
		routed[l.To+"|"+l.From] = true
		if err := b.hubRoutes(byName[l.From], byName[l.To]); err != nil {
			return err
		}
		if err := b.hubRoutes(byName[l.To], byName[l.From]); err != nil {
			return err
		}
	}
	return nil
}

// hubRoutes sends traffic for the peer's block through the transit gateway
// from every private route table of the source network.
func (b *cfBuilder) hubRoutes(from, to *networkPlan) error {
	num := 0
	for zone := 0; zone < from.net.Zones; zone++ {
		rt := from.zoneRT[zone]
		if rt == "" {
			continue
		}
		num++
		err := b.add(fmt.Sprintf("%sTo%sRoute%d", from.prefix, to.prefix, num), ec2.Route{
			RouteTableId:         ref(rt),
			DestinationCidrBlock: to.net.Block.String(),
			TransitGatewayId:     ref("TransitGateway"),
		}, "TGWAttachment"+from.prefix)
		if err != nil {
			return err
		}
	}
	return nil
}

// instanceSupport emits the shared parameters, SSM role and instance profile
// once any network hosts a test instance.
func (b *cfBuilder) instanceSupport(plans []*networkPlan) error {
	hosted := false
	for _, p := range plans {
		if p.instance {
			hosted = true
			break
		}
	}
	if !hosted {
		return nil
	}

	b.tmpl.Parameters = map[string]netweave.Parameter{
		"InstanceType": {
			Type:          "String",
			Description:   "Instance type for the connectivity test instances",
			Default:       "t3.micro",
			AllowedValues: []string{"t3.micro", "t3.small", "t3.medium"},
		},
		"LatestAmiId": {
			Type:        "AWS::SSM::Parameter::Value<AWS::EC2::Image::Id>",
			Description: "Latest Amazon Linux 2023 AMI resolved from SSM Parameter Store",
			Default:     amiParameterPath,
		},
	}

	assumeRole := intrinsics.NewPolicyDocument()
	assumeRole.Statement = []any{
		intrinsics.PolicyStatement{
			Effect:    "Allow",
			Principal: intrinsics.ServicePrincipal{"ec2.amazonaws.com"},
			Action:    "sts:AssumeRole",
		},
	}
	err := b.add("EC2SSMRole", iam.Role{
		AssumeRolePolicyDocument: assumeRole,
		ManagedPolicyArns:        []any{ssmManagedPolicyArn},
		Tags:                     nameTag("ssm-role"),
	})
	if err != nil {
		return err
	}
	return b.add("EC2InstanceProfile", iam.InstanceProfile{
		Roles: []any{ref("EC2SSMRole")},
	})
}

func (b *cfBuilder) outputs(plans []*networkPlan) {
	outputs := make(map[string]netweave.Output)

	for _, p := range plans {
		outputs[p.prefix+"Id"] = netweave.Output{
			Description: "VPC ID of network " + p.net.Name,
			Value:       ref(p.prefix),
			Export:      export(p.prefix + "Id"),
		}
		if p.instance {
			outputs[p.prefix+"EC2InstanceId"] = netweave.Output{
				Description: "Test instance in network " + p.net.Name,
				Value:       ref(p.prefix + "EC2Instance"),
				Export:      export(p.prefix + "EC2InstanceId"),
			}
			outputs[p.prefix+"EC2PrivateIP"] = netweave.Output{
				Description: "Private address of the test instance in " + p.net.Name,
				Value:       getAtt(p.prefix+"EC2Instance", "PrivateIp"),
				Export:      export(p.prefix + "EC2PrivateIP"),
			}
		}
	}

	if len(b.topo.Links) > 0 {
		outputs["TransitGatewayId"] = netweave.Output{
			Description: "Transit gateway joining the networks",
			Value:       ref("TransitGateway"),
			Export:      export("TransitGatewayId"),
		}
	}

	b.tmpl.Outputs = outputs
}

// logicalPrefix converts a network name to its CloudFormation logical ID
// prefix. Separators are dropped and each segment is capitalised:
// "vpc1" becomes "Vpc1", "shared-services" becomes "SharedServices".
func logicalPrefix(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		} else {
			upper = true
		}
	}
	return b.String()
}

func tierLabel(tier topology.Tier) string {
	switch tier {
	case topology.TierPublic:
		return "PublicSubnet"
	case topology.TierPrivate:
		return "PrivateSubnet"
	case topology.TierGatewayAttachment:
		return "TGWSubnet"
	}
	return "Subnet"
}

func ref(name string) intrinsics.Ref {
	return intrinsics.Ref{LogicalName: name}
}

func getAtt(name, attr string) intrinsics.GetAtt {
	return intrinsics.GetAtt{LogicalName: name, Attribute: attr}
}

func nameTag(suffix string) []any {
	return []any{intrinsics.Tag{Key: "Name", Value: intrinsics.Sub{String: "${AWS::StackName}-" + suffix}}}
}

func export(name string) *struct {
	Name any `json:"Name" yaml:"Name"`
} {
	return &struct {
		Name any `json:"Name" yaml:"Name"`
	}{Name: intrinsics.Sub{String: "${AWS::StackName}-" + name}}
}

// peerBlocks collects the base blocks of every network linked to name,
// in link declaration order.
func peerBlocks(t *topology.Topology, name string) []string {
	var blocks []string
	seen := make(map[string]bool)
	addPeer := func(peer string) {
		if peer == name || seen[peer] {
			return
		}
		if n, ok := t.Network(peer); ok {
			seen[peer] = true
			blocks = append(blocks, n.Block.String())
		}
	}
	for _, l := range t.Links {
		if l.From == name {
			addPeer(l.To)
		}
		if l.To == name {
			addPeer(l.From)
		}
	}
	return blocks
}

func linked(t *topology.Topology, name string) bool {
	for _, l := range t.Links {
		if l.From == name || l.To == name {
			return true
		}
	}
	return false
}

func zoneHasSubnet(subs []topology.Subnet, zone int) bool {
	for _, s := range subs {
		if s.Zone == zone {
			return true
		}
	}
	return false
}

// firstInZone returns the logical ID of the first subnet placed in the zone.
func firstInZone(ids []string, subs []topology.Subnet, zone int) (string, bool) {
	for i, s := range subs {
		if s.Zone == zone {
			return ids[i], true
		}
	}
	return "", false
}

// onePerZone picks the first subnet of each zone, in zone order. Interface
// endpoints and hub attachments accept at most one subnet per zone.
func onePerZone(ids []string, subs []topology.Subnet, zones int) []any {
	out := make([]any, 0, zones)
	for zone := 0; zone < zones; zone++ {
		if id, ok := firstInZone(ids, subs, zone); ok {
			out = append(out, ref(id))
		}
	}
	return out
}

// attachmentSubnets returns the subnets anchoring a hub attachment:
// gateway-attachment tier when present, otherwise private, otherwise public.
func attachmentSubnets(p *networkPlan) []any {
	for _, tier := range []topology.Tier{topology.TierGatewayAttachment, topology.TierPrivate, topology.TierPublic} {
		subs := p.net.TierSubnets(tier)
		if len(subs) > 0 {
			return onePerZone(p.subnet[tier], subs, p.net.Zones)
		}
	}
	return nil
}
